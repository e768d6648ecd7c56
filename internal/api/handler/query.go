package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
)

// Answerer defines the interface the query handler depends on.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// NewQueryHandler returns an http.HandlerFunc for POST /queryGPT.
func NewQueryHandler(svc Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QueryText string `json:"queryText"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.QueryText == "" {
			response.Error(w, http.StatusBadRequest, "queryText is required")
			return
		}

		answer, err := svc.Answer(r.Context(), req.QueryText)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, struct {
			AIResponse string `json:"aiResponse"`
		}{AIResponse: answer})
	}
}
