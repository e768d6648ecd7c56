package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/internal/insight"
)

// SentimentAnalyzer defines the interface the sentiment handlers depend on.
type SentimentAnalyzer interface {
	AdminSentiment(ctx context.Context, message string) (insight.SentimentResult, error)
	CustomerSentiment(ctx context.Context, message string) (insight.SentimentResult, error)
}

type sentimentRequest struct {
	Message string `json:"message"`
}

// NewAdminSentimentHandler returns an http.HandlerFunc for POST /adminSentiment.
func NewAdminSentimentHandler(svc SentimentAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sentimentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Message == "" {
			response.Error(w, http.StatusBadRequest, "message is required")
			return
		}

		result, err := svc.AdminSentiment(r.Context(), req.Message)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, struct {
			AdminSentiment      string  `json:"admin_sentiment"`
			AdminSentimentScore float64 `json:"admin_sentiment_score"`
		}{
			AdminSentiment:      result.Label,
			AdminSentimentScore: result.Score,
		})
	}
}

// NewCustomerSentimentHandler returns an http.HandlerFunc for POST /customerSentiment.
func NewCustomerSentimentHandler(svc SentimentAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sentimentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Message == "" {
			response.Error(w, http.StatusBadRequest, "message is required")
			return
		}

		result, err := svc.CustomerSentiment(r.Context(), req.Message)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, struct {
			CustomerSentiment      string  `json:"customer_sentiment"`
			CustomerSentimentScore float64 `json:"customer_sentiment_score"`
		}{
			CustomerSentiment:      result.Label,
			CustomerSentimentScore: result.Score,
		})
	}
}
