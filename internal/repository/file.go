package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	// TimestampLayout renders a second-precision local time as yyyyMMdd_HHmmss.
	TimestampLayout = "20060102_150405"

	// ContentPrefix is the label written in front of the password.
	ContentPrefix = "Ваш пароль: "

	filePrefix = "password_"
	fileSuffix = ".txt"
	fileMode   = 0o600
)

// ErrFileExists is returned when a password file for the same second was
// already written to the directory.
var ErrFileExists = fmt.Errorf("password file already exists: %w", fs.ErrExist)

// FileRepository writes password files to a caller-supplied directory.
type FileRepository struct {
	now func() time.Time
}

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithClock overrides the clock used to timestamp file names.
func WithClock(now func() time.Time) Option {
	return func(r *FileRepository) {
		r.now = now
	}
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(opts ...Option) *FileRepository {
	r := &FileRepository{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FileName returns the password file name for the given time.
func FileName(t time.Time) string {
	return filePrefix + t.Local().Format(TimestampLayout) + fileSuffix
}

// Content returns the file body written for password.
func Content(password string) string {
	return ContentPrefix + password
}

// Save writes password to a new timestamped file inside dir and returns
// the path of that file. The directory is not checked beforehand; a
// missing or read-only directory surfaces as the write error.
//
// Unlike a plain create-or-truncate write, an existing file with the same
// name is never overwritten: a second save within the same second returns
// ErrFileExists and leaves the first file intact.
func (r *FileRepository) Save(dir, password string) (string, error) {
	path := filepath.Join(dir, FileName(r.now()))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", ErrFileExists
		}
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if _, err := f.WriteString(Content(password)); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
