package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/harithravi/talklens/internal/api/middleware"
	"github.com/harithravi/talklens/internal/api/response"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	HealthHandler http.HandlerFunc

	AdminSentimentHandler        http.HandlerFunc
	CustomerSentimentHandler     http.HandlerFunc
	CheckTopicsHandler           http.HandlerFunc
	QueryHandler                 http.HandlerFunc
	AnalyseDataHandler           http.HandlerFunc
	CategorizeIssueHandler       http.HandlerFunc
	TranscribeAndClassifyHandler http.HandlerFunc
	ReportHandler                http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/health", orNotImplemented(deps.HealthHandler))

	r.Post("/adminSentiment", orNotImplemented(deps.AdminSentimentHandler))
	r.Post("/customerSentiment", orNotImplemented(deps.CustomerSentimentHandler))
	r.Post("/checkTopics", orNotImplemented(deps.CheckTopicsHandler))
	r.Post("/queryGPT", orNotImplemented(deps.QueryHandler))
	r.Post("/analyseData", orNotImplemented(deps.AnalyseDataHandler))
	r.Post("/categorizeIssue", orNotImplemented(deps.CategorizeIssueHandler))
	r.Post("/transcribeAndClassify", orNotImplemented(deps.TranscribeAndClassifyHandler))
	r.Get("/data", orNotImplemented(deps.ReportHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "Endpoint not yet implemented")
	}
}
