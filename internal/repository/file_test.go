package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"
	"time"
)

var fileNamePattern = regexp.MustCompile(`^password_\d{8}_\d{6}\.txt$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

	got := FileName(ts)
	if got != "password_20240101_120000.txt" {
		t.Errorf("FileName() = %q, want %q", got, "password_20240101_120000.txt")
	}
	if !fileNamePattern.MatchString(got) {
		t.Errorf("FileName() = %q does not match %s", got, fileNamePattern)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository()

	path, err := repo.Save(dir, "aZ3!kLp9Q@2x")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("Save() dir = %q, want %q", filepath.Dir(path), dir)
	}
	if !fileNamePattern.MatchString(filepath.Base(path)) {
		t.Errorf("Save() file name %q does not match %s", filepath.Base(path), fileNamePattern)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(data) != "Ваш пароль: aZ3!kLp9Q@2x" {
		t.Errorf("file content = %q, want %q", data, "Ваш пароль: aZ3!kLp9Q@2x")
	}
}

func TestSaveUsesClock(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	repo := NewFileRepository(WithClock(fixedClock(ts)))

	path, err := repo.Save(dir, "secret")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	want := filepath.Join(dir, "password_20240101_120000.txt")
	if path != want {
		t.Errorf("Save() path = %q, want %q", path, want)
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	repo := NewFileRepository()

	path, err := repo.Save(dir, "secret")
	if err == nil {
		t.Fatal("Save() expected error for missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Save() error = %v, want fs.ErrNotExist", err)
	}
	if path != "" {
		t.Errorf("Save() path = %q, want empty", path)
	}
	if _, statErr := os.Stat(dir); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("Save() created %s", dir)
	}
}

func TestSaveReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatalf("Chmod() unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	_, err := NewFileRepository().Save(dir, "secret")
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Save() error = %v, want fs.ErrPermission", err)
	}
}

func TestSaveSameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	repo := NewFileRepository(WithClock(fixedClock(ts)))

	path, err := repo.Save(dir, "first")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	_, err = repo.Save(dir, "second")
	if !errors.Is(err, ErrFileExists) {
		t.Fatalf("Save() error = %v, want ErrFileExists", err)
	}
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("Save() error = %v should wrap fs.ErrExist", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(data) != Content("first") {
		t.Errorf("file content = %q, want %q", data, Content("first"))
	}
}
