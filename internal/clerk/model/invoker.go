// Package model calls the text-generation endpoint behind the clerk.
//
// Invokers never retry. Failures come back as coded errors whose message is
// safe to show the caller: CodeUpstream for transport and endpoint errors,
// CodeTimeout when the call outlived its deadline.
package model

import (
	"context"
	"errors"

	"tpb/internal/clerk/models"
	dErrors "tpb/pkg/domain-errors"
)

const msgCallFailed = "API call failed"

// Request is one model call.
type Request struct {
	Model     string
	System    string
	MaxTokens int
	Messages  []models.Turn
}

// Usage reports token counts when the endpoint returns them.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Reply is the concatenated text of every text segment, in order. It may be
// empty.
type Reply struct {
	Text  string
	Usage *Usage
}

// Invoker sends a composed prompt to a model.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (*Reply, error)
}

// transportError classifies a failed call.
func transportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "model call timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUpstream, msgCallFailed)
}
