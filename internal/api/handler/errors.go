package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/internal/insight"
)

// serviceError maps orchestration failures to HTTP responses. Request
// validation failures are handled before the service is called; anything
// that fails past that point returns a generic 500 so provider replies and
// upstream error detail never leak to the client.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, insight.ErrAudioTooLarge) {
		response.Error(w, http.StatusBadRequest, "audio file exceeds the 10MB limit")
		return
	}

	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	response.Error(w, http.StatusInternalServerError, "An unexpected error occurred")
}
