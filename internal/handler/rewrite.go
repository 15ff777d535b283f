package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rewritely/rewritely-go/internal/model"
	"github.com/rewritely/rewritely-go/internal/service"
)

// RewriteHandler handles HTTP requests for message rewriting.
type RewriteHandler struct {
	service *service.RewriteService
}

// NewRewriteHandler creates a new RewriteHandler.
func NewRewriteHandler(svc *service.RewriteService) *RewriteHandler {
	return &RewriteHandler{service: svc}
}

// HandleRewrite handles POST /api/rewrite requests.
func (h *RewriteHandler) HandleRewrite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	result, err := h.service.Rewrite(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTextRequired),
			errors.Is(err, service.ErrTextTooLong),
			errors.Is(err, service.ErrUnknownStyle):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("server error, please try again later"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.RewriteResponse{Success: true, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]any {
	return map[string]any{"success": false, "message": msg}
}
