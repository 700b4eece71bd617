package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dErrors "tpb/pkg/domain-errors"
)

const (
	anthropicVersion = "2023-06-01"
	maxResponseBytes = 4 << 20
)

// AnthropicConfig configures AnthropicClient.
type AnthropicConfig struct {
	APIKey  string
	URL     string
	Timeout time.Duration
}

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

type AnthropicOption func(*AnthropicClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) AnthropicOption {
	return func(a *AnthropicClient) {
		a.httpClient = c
	}
}

func NewAnthropicClient(cfg AnthropicConfig, opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		apiKey:     cfg.APIKey,
		url:        cfg.URL,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage *Usage `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *AnthropicClient) Invoke(ctx context.Context, req Request) (*Reply, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body := anthropicRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  make([]anthropicMessage, len(req.Messages)),
	}
	for i, m := range req.Messages {
		body.Messages[i] = anthropicMessage{Role: string(m.Role), Content: m.Content}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode model request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build model request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(ctx, err)
	}

	var decoded anthropicResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode != http.StatusOK {
		msg := msgCallFailed
		if decodeErr == nil && decoded.Error != nil && strings.TrimSpace(decoded.Error.Message) != "" {
			msg = decoded.Error.Message
		}
		return nil, dErrors.Wrap(fmt.Errorf("status %d", resp.StatusCode), dErrors.CodeUpstream, msg)
	}
	if decodeErr != nil {
		return nil, dErrors.Wrap(decodeErr, dErrors.CodeUpstream, "malformed model response")
	}

	var text strings.Builder
	for _, block := range decoded.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return &Reply{Text: text.String(), Usage: decoded.Usage}, nil
}
