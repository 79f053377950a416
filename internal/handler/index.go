package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/passfile/passfile-go/internal/status"
)

//go:embed web/index.html
var indexSource string

var indexTemplate = template.Must(template.New("index").Parse(indexSource))

// indexData carries the status texts rendered into the page.
type indexData struct {
	ChooseFolder      string
	FolderSelected    string
	PasswordLabel     string
	PasswordGenerated string
	ErrorPrefix       string
	FolderRequired    string
	PasswordRequired  string
}

var pageTexts = indexData{
	ChooseFolder:      status.ChooseFolder,
	FolderSelected:    status.FolderSelected,
	PasswordLabel:     status.PasswordLabel,
	PasswordGenerated: status.PasswordGenerated,
	ErrorPrefix:       status.ErrorPrefix,
	FolderRequired:    status.FolderRequired,
	PasswordRequired:  status.PasswordRequired,
}

// HandleIndex serves the single-page front end.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageTexts); err != nil {
		slog.Error("rendering index page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
