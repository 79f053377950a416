package handler

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/passfile/passfile-go/internal/model"
	"github.com/passfile/passfile-go/internal/repository"
	"github.com/passfile/passfile-go/internal/service"
	"github.com/passfile/passfile-go/internal/status"
)

// PasswordHandler handles HTTP requests for password generation and saving.
type PasswordHandler struct {
	service *service.PasswordService
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(svc *service.PasswordService) *PasswordHandler {
	return &PasswordHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *PasswordHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Generate())
}

// HandleSave handles POST /api/v1/save requests.
func (h *PasswordHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Save(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFolderRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(status.Message(err)))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse(status.Message(err)))
		}
		return
	}

	resp.Message = status.Saved(resp.FileName)
	writeJSON(w, http.StatusCreated, resp)
}

// HandleListFolders handles GET /api/v1/folders requests.
func (h *PasswordHandler) HandleListFolders(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListFolders(r.URL.Query().Get("path"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotADirectory):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, fs.ErrNotExist):
			writeJSON(w, http.StatusNotFound, errorResponse("folder not found"))
		case errors.Is(err, fs.ErrPermission):
			writeJSON(w, http.StatusForbidden, errorResponse("permission denied"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
