package repository

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/passfile/passfile-go/internal/model"
)

// ErrNotADirectory is returned by ListFolders when the path is a file.
var ErrNotADirectory = errors.New("not a directory")

// ListFolders returns the immediate, non-hidden subdirectories of dir
// sorted by name.
func ListFolders(dir string) (model.FolderListing, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return model.FolderListing{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return model.FolderListing{}, err
	}
	if !info.IsDir() {
		return model.FolderListing{}, ErrNotADirectory
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return model.FolderListing{}, err
	}

	listing := model.FolderListing{
		Path:    abs,
		Folders: make([]model.Folder, 0, len(entries)),
	}
	if parent := filepath.Dir(abs); parent != abs {
		listing.Parent = parent
	}

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		listing.Folders = append(listing.Folders, model.Folder{
			Name: e.Name(),
			Path: filepath.Join(abs, e.Name()),
		})
	}

	sort.Slice(listing.Folders, func(i, j int) bool {
		return listing.Folders[i].Name < listing.Folders[j].Name
	})

	return listing, nil
}
