package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"tpb/internal/clerk/models"
	dErrors "tpb/pkg/domain-errors"
)

// generator is the slice of the genai client the invoker uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient calls a Gemini model through the genai SDK.
type GeminiClient struct {
	models  generator
	timeout time.Duration
}

// NewGeminiClient builds a client for the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string, timeout time.Duration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{models: client.Models, timeout: timeout}, nil
}

func (c *GeminiClient) Invoke(ctx context.Context, req Request) (*Reply, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		var role genai.Role = genai.RoleUser
		if m.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	config := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, apiErr.Message)
		}
		return nil, transportError(ctx, err)
	}

	reply := &Reply{Text: geminiText(resp)}
	if resp.UsageMetadata != nil {
		reply.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return reply, nil
}

// geminiText concatenates the text parts of the first candidate, skipping
// thought parts.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text += part.Text
	}
	return text
}
