package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/internal/store"
)

// ReportFetcher defines the interface the report handler depends on.
type ReportFetcher interface {
	Report(ctx context.Context) ([]byte, error)
}

// NewReportHandler returns an http.HandlerFunc for GET /data. The persisted
// report JSON is returned verbatim; 404 when no analysis has completed yet.
func NewReportHandler(svc ReportFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := svc.Report(r.Context())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "no report found")
				return
			}
			serviceError(w, r, err)
			return
		}

		response.Raw(w, body)
	}
}
