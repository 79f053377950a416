package service

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/passfile/passfile-go/internal/crypto"
	"github.com/passfile/passfile-go/internal/model"
	"github.com/passfile/passfile-go/internal/repository"
)

var (
	ErrFolderRequired   = errors.New("directory is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrSaveFailed       = errors.New("saving password failed")
)

// PasswordStore persists a password under a directory and returns the
// written path.
type PasswordStore interface {
	Save(dir, password string) (string, error)
}

// PasswordService handles password generation and persistence. It keeps
// no session state: the caller passes the selected folder and the current
// password on every call.
type PasswordService struct {
	store PasswordStore
}

// NewPasswordService creates a new PasswordService.
func NewPasswordService(store PasswordStore) *PasswordService {
	return &PasswordService{store: store}
}

// Generate produces a new password.
func (s *PasswordService) Generate() model.GenerateResponse {
	password := crypto.Generate()
	slog.Debug("password generated", "password", crypto.Redact(password))

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}
}

// Save writes req.Password to a new timestamped file in req.Directory.
// I/O failures are returned joined with ErrSaveFailed.
func (s *PasswordService) Save(req model.SaveRequest) (model.SaveResponse, error) {
	if strings.TrimSpace(req.Directory) == "" {
		return model.SaveResponse{}, ErrFolderRequired
	}
	if req.Password == "" {
		return model.SaveResponse{}, ErrPasswordRequired
	}

	path, err := s.store.Save(req.Directory, req.Password)
	if err != nil {
		slog.Warn("saving password failed", "directory", req.Directory, "error", err)
		return model.SaveResponse{}, errors.Join(ErrSaveFailed, err)
	}

	slog.Info("password saved", "path", path)

	return model.SaveResponse{
		Path:     path,
		FileName: filepath.Base(path),
	}, nil
}

// ListFolders lists the subdirectories of path for the folder picker. An
// empty path starts at the user's home directory.
func (s *PasswordService) ListFolders(path string) (model.FolderListing, error) {
	if strings.TrimSpace(path) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return model.FolderListing{}, err
		}
		path = home
	}

	return repository.ListFolders(filepath.Clean(path))
}

// Cause strips ErrSaveFailed from a Save error and returns the underlying
// I/O error.
func Cause(err error) error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return err
	}
	for _, e := range joined.Unwrap() {
		if e != ErrSaveFailed {
			return e
		}
	}
	return err
}
