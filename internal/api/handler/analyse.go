package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
)

// ConversationAnalyser defines the interface the analyse handler depends on.
type ConversationAnalyser interface {
	AnalyseConversation(ctx context.Context, chatData string) error
}

// NewAnalyseDataHandler returns an http.HandlerFunc for POST /analyseData.
// The report is validated before this responds; persistence happens in the
// background, so success is a 200 with no body.
func NewAnalyseDataHandler(svc ConversationAnalyser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ChatData string `json:"chatData"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.ChatData == "" {
			response.Error(w, http.StatusBadRequest, "chatData is required")
			return
		}

		if err := svc.AnalyseConversation(r.Context(), req.ChatData); err != nil {
			serviceError(w, r, err)
			return
		}

		response.NoContent(w)
	}
}
