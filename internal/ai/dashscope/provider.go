// Package dashscope implements models.CompletionProvider using the Alibaba
// DashScope text-generation API.
package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harithravi/talklens/internal/ai/aierrors"
	"github.com/harithravi/talklens/internal/config"
	"github.com/harithravi/talklens/pkg/models"
)

const generationURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"

// Provider implements models.CompletionProvider using DashScope.
type Provider struct {
	cfg    config.DashScopeConfig
	client *http.Client
}

func NewProvider(cfg config.DashScopeConfig) *Provider {
	return &Provider{cfg: cfg, client: &http.Client{}}
}

func (p *Provider) Name() string { return "dashscope" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type generationRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []message `json:"messages"`
	} `json:"input"`
	Parameters struct {
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens,omitempty"`
	} `json:"parameters"`
}

type generationResponse struct {
	Output struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"output"`
	RequestID string `json:"request_id"`
}

func (p *Provider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	var genReq generationRequest
	genReq.Model = p.cfg.Model
	genReq.Input.Messages = []message{{Role: "system", Content: req.System}}
	if req.Context != "" {
		genReq.Input.Messages = append(genReq.Input.Messages,
			message{Role: "system", Content: "Context:\n" + req.Context})
	}
	genReq.Input.Messages = append(genReq.Input.Messages, message{Role: "user", Content: req.User})
	genReq.Parameters.Temperature = 0
	genReq.Parameters.MaxTokens = 2000

	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, generationURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", aierrors.ClassifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", aierrors.ClassifyStatus(resp.StatusCode)
	}

	var genResp generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: %v", aierrors.ErrInvalidResponse, err)
	}
	if genResp.Output.Text == "" {
		return "", fmt.Errorf("%w: empty output text", aierrors.ErrInvalidResponse)
	}

	return genResp.Output.Text, nil
}

var _ models.CompletionProvider = (*Provider)(nil)
