package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harithravi/talklens/internal/api"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	return api.NewRouter(api.Dependencies{
		HealthHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		},
		AdminSentimentHandler:        ok,
		CustomerSentimentHandler:     ok,
		CheckTopicsHandler:           ok,
		QueryHandler:                 ok,
		AnalyseDataHandler:           ok,
		CategorizeIssueHandler:       ok,
		TranscribeAndClassifyHandler: ok,
		ReportHandler:                ok,
	})
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	router := newTestRouter()

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"POST", "/adminSentiment"},
		{"POST", "/customerSentiment"},
		{"POST", "/checkTopics"},
		{"POST", "/queryGPT"},
		{"POST", "/analyseData"},
		{"POST", "/categorizeIssue"},
		{"POST", "/transcribeAndClassify"},
		{"GET", "/data"},
	}

	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			req := httptest.NewRequest(ep.method, ep.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_MissingHandlerIs501(t *testing.T) {
	router := api.NewRouter(api.Dependencies{})

	req := httptest.NewRequest("POST", "/adminSentiment", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AssignsRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
