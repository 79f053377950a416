package model

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// SaveRequest carries the folder selected by the user and the password
// currently on display.
type SaveRequest struct {
	Directory string `json:"directory"`
	Password  string `json:"password"`
}

// SaveResponse describes a saved password file.
type SaveResponse struct {
	Path     string `json:"path"`
	FileName string `json:"file_name"`
	Message  string `json:"message,omitempty"`
}
