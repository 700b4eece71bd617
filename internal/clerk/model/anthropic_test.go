package model

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpb/internal/clerk/models"
	dErrors "tpb/pkg/domain-errors"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *AnthropicClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAnthropicClient(AnthropicConfig{APIKey: "test-key", URL: srv.URL, Timeout: timeout})
}

func TestAnthropicInvoke(t *testing.T) {
	req := Request{
		Model:     "claude-test",
		System:    "You are the guide.",
		MaxTokens: 1024,
		Messages:  []models.Turn{{Role: models.RoleUser, Content: "hi"}},
	}

	t.Run("sends headers and body and concatenates text blocks", func(t *testing.T) {
		var got anthropicRequest
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"tool_use"},{"type":"text","text":"there"}],"usage":{"input_tokens":12,"output_tokens":3}}`))
		}, 0)

		reply, err := client.Invoke(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Hello there", reply.Text)
		assert.Equal(t, &Usage{InputTokens: 12, OutputTokens: 3}, reply.Usage)
		assert.Equal(t, "claude-test", got.Model)
		assert.Equal(t, 1024, got.MaxTokens)
		assert.Equal(t, "You are the guide.", got.System)
		assert.Equal(t, []anthropicMessage{{Role: "user", Content: "hi"}}, got.Messages)
	})

	t.Run("zero text blocks is an empty reply", func(t *testing.T) {
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content":[]}`))
		}, 0)

		reply, err := client.Invoke(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "", reply.Text)
		assert.Nil(t, reply.Usage)
	})

	t.Run("non-200 carries the endpoint message", func(t *testing.T) {
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens too large"}}`))
		}, 0)

		_, err := client.Invoke(context.Background(), req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstream))
		assert.Equal(t, "max_tokens too large", dErrors.MessageOf(err))
	})

	t.Run("non-200 without a message uses the generic one", func(t *testing.T) {
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}, 0)

		_, err := client.Invoke(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, msgCallFailed, dErrors.MessageOf(err))
	})

	t.Run("malformed success body", func(t *testing.T) {
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content":`))
		}, 0)

		_, err := client.Invoke(context.Background(), req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstream))
	})

	t.Run("slow endpoint times out", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, 50*time.Millisecond)
		t.Cleanup(func() { close(release) })

		_, err := client.Invoke(context.Background(), req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
	})

	t.Run("does not retry", func(t *testing.T) {
		calls := 0
		client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		}, 0)

		_, err := client.Invoke(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
