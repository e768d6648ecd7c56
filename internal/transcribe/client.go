// Package transcribe converts recorded audio into text via an external
// speech-to-text HTTP service.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"
)

// Sentinel errors for transcription client failures.
var (
	ErrUnreachable         = errors.New("transcription service unreachable")
	ErrTimeout             = errors.New("transcription timeout")
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrEmptyAudio          = errors.New("audio payload is empty")
)

// Client is the interface for transcribing audio.
type Client interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// WhisperClient implements Client against an OpenAI-compatible audio
// transcriptions endpoint.
type WhisperClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewWhisperClient creates a new transcription client.
func NewWhisperClient(baseURL, apiKey, model string, timeout time.Duration) *WhisperClient {
	return &WhisperClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Transcribe sends the audio bytes as a multipart upload and returns the
// transcript text. Size limits are the caller's responsibility; this client
// only rejects empty payloads.
func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}
	if filename == "" {
		filename = "audio.mp3"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}
	_ = writer.WriteField("model", c.model)
	_ = writer.WriteField("response_format", "json")
	writer.Close()

	u := c.baseURL + "/v1/audio/transcriptions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrTranscriptionFailed, resp.StatusCode)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding transcription: %w", err)
	}

	return result.Text, nil
}

// classifyError maps transport-level errors to sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// Compile-time check that WhisperClient implements Client.
var _ Client = (*WhisperClient)(nil)
