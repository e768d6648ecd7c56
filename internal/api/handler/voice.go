package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/pkg/models"
)

// maxUploadBytes bounds how much of a multipart upload is read. The service
// enforces its own audio ceiling; this only protects against unbounded reads.
const maxUploadBytes = 32 << 20

// VoiceClassifier defines the interface the voice handler depends on.
type VoiceClassifier interface {
	TranscribeAndClassify(ctx context.Context, audio []byte, filename string) (string, models.Classification, error)
}

// NewTranscribeAndClassifyHandler returns an http.HandlerFunc for
// POST /transcribeAndClassify. The audio is sent as a multipart field named
// "audioFile"; a request without it is rejected before any gateway is called.
func NewTranscribeAndClassifyHandler(svc VoiceClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("audioFile")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "audioFile is required")
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "could not read audioFile")
			return
		}

		transcript, classification, err := svc.TranscribeAndClassify(r.Context(), audio, header.Filename)
		if err != nil {
			serviceError(w, r, err)
			return
		}

		response.JSON(w, struct {
			Transcript     string                `json:"transcript"`
			Classification models.Classification `json:"classification"`
		}{
			Transcript:     transcript,
			Classification: classification,
		})
	}
}
