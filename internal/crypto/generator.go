package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_"

	// Alphabet is the set of characters a generated password is drawn from.
	Alphabet = uppercaseChars + lowercaseChars + numberChars + symbolChars

	// PasswordLength is the fixed length of every generated password.
	PasswordLength = 12
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generate creates a cryptographically secure random password of
// PasswordLength characters. Each character is picked independently and
// uniformly from Alphabet.
func Generate() string {
	result := make([]byte, PasswordLength)
	for i := range result {
		result[i] = randChar()
	}
	return string(result)
}

// randChar picks a random character from Alphabet using crypto/rand.
func randChar() byte {
	n, err := rand.Int(rand.Reader, alphabetSize)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic("crypto: reading random source: " + err.Error())
	}
	return Alphabet[n.Int64()]
}

// Redact masks a secret so it can be logged.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len([]rune(s)))
}
