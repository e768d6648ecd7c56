package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/pkg/models"
)

// IssueCategorizer defines the interface the categorize handler depends on.
type IssueCategorizer interface {
	CategorizeIssue(ctx context.Context, text string) (models.Classification, error)
}

// NewCategorizeIssueHandler returns an http.HandlerFunc for POST /categorizeIssue.
func NewCategorizeIssueHandler(svc IssueCategorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Text == "" {
			response.Error(w, http.StatusBadRequest, "text is required")
			return
		}

		classification, err := svc.CategorizeIssue(r.Context(), req.Text)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, classification)
	}
}
