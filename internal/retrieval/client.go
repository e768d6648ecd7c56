// Package retrieval queries the external vector index for snippets relevant
// to a query string. The query text is embedded first, then the vector is sent
// to the index. Zero matches is a valid outcome, not an error.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/harithravi/talklens/internal/config"
	"github.com/harithravi/talklens/pkg/models"
)

// Sentinel errors for retrieval client failures.
var (
	ErrUnreachable = errors.New("retrieval service unreachable")
	ErrTimeout     = errors.New("retrieval query timeout")
	ErrQueryFailed = errors.New("retrieval query failed")
)

// Client is the interface for querying the vector index.
type Client interface {
	Search(ctx context.Context, query string) ([]models.Snippet, error)
}

// HTTPClient implements Client against an embeddings endpoint and a
// Pinecone-style index REST API.
type HTTPClient struct {
	indexURL     string
	apiKey       string
	topK         int
	embedBaseURL string
	embedAPIKey  string
	embedModel   string
	client       *http.Client
}

// NewHTTPClient creates a new retrieval client from config.
func NewHTTPClient(cfg config.RetrievalConfig) *HTTPClient {
	return &HTTPClient{
		indexURL:     cfg.IndexURL,
		apiKey:       cfg.APIKey,
		topK:         cfg.TopK,
		embedBaseURL: cfg.EmbedBaseURL,
		embedAPIKey:  cfg.EmbedAPIKey,
		embedModel:   cfg.EmbedModel,
		client:       &http.Client{Timeout: cfg.Timeout},
	}
}

// Search embeds the query text and returns the top-K index matches ordered by
// descending relevance score. Returns an empty slice when nothing matches.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.Snippet, error) {
	vector, err := c.embed(ctx, query)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(indexQueryRequest{
		Vector:          vector,
		TopK:            c.topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding index query: %w", err)
	}

	u := c.indexURL + "/query"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrQueryFailed, resp.StatusCode)
	}

	var queryResp indexQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		return nil, fmt.Errorf("decoding index response: %w", err)
	}

	snippets := make([]models.Snippet, 0, len(queryResp.Matches))
	for _, m := range queryResp.Matches {
		snippets = append(snippets, models.Snippet{Text: m.Metadata.Text, Score: m.Score})
	}
	return snippets, nil
}

// embed fetches the query embedding from the embeddings endpoint.
func (c *HTTPClient) embed(ctx context.Context, text string) ([]float64, error) {
	reqBody, err := json.Marshal(embeddingRequest{
		Model: c.embedModel,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding embedding request: %w", err)
	}

	u := c.embedBaseURL + "/v1/embeddings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.embedAPIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: embedding status %d", ErrQueryFailed, resp.StatusCode)
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("decoding embedding response: %w", err)
	}
	if len(embResp.Data) == 0 {
		return nil, fmt.Errorf("%w: no embedding returned", ErrQueryFailed)
	}

	return embResp.Data[0].Embedding, nil
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

// --- wire types ---

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

type indexQueryRequest struct {
	Vector          []float64 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type indexQueryResponse struct {
	Matches []struct {
		Score    float64 `json:"score"`
		Metadata struct {
			Text string `json:"text"`
		} `json:"metadata"`
	} `json:"matches"`
}

// Compile-time check that HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
