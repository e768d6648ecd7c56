package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
)

// TopicChecker defines the interface the topic handler depends on.
type TopicChecker interface {
	CheckTopics(ctx context.Context, message string, topics []string) (string, error)
}

// NewCheckTopicsHandler returns an http.HandlerFunc for POST /checkTopics.
func NewCheckTopicsHandler(svc TopicChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string   `json:"message"`
			Topics  []string `json:"topics"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Message == "" {
			response.Error(w, http.StatusBadRequest, "message is required")
			return
		}
		if len(req.Topics) == 0 {
			response.Error(w, http.StatusBadRequest, "topics is required")
			return
		}

		matched, err := svc.CheckTopics(r.Context(), req.Message, req.Topics)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, struct {
			AIResponse string `json:"aiResponse"`
		}{AIResponse: matched})
	}
}
