package model

// FolderListing is a single level of the folder picker.
type FolderListing struct {
	Path    string   `json:"path"`
	Parent  string   `json:"parent,omitempty"`
	Folders []Folder `json:"folders"`
}

// Folder is a selectable subdirectory.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
