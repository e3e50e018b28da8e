package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/audit-api/audit"
)

func TestComplete(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(ChatResponse{
			ID: "chatcmpl-1",
			Choices: []Choice{
				{Index: 0, Message: Message{Role: "assistant", Content: "Use bold colors."}},
				{Index: 1, Message: Message{Role: "assistant", Content: "ignored"}},
			},
		})
	}))
	defer srv.Close()

	client := New("sk-test", WithBaseURL(srv.URL+"/v1"), WithHTTPClient(srv.Client()))
	text, err := client.Complete(context.Background(), "system role", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, "Use bold colors.", text)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, []Message{{Role: "system", Content: "system role"}, {Role: "user", Content: "user prompt"}}, got.Messages)
}

func TestCompleteModelOverride(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	_, err := New("k", WithBaseURL(srv.URL), WithModel("gpt-4o"), WithModel("")).Complete(context.Background(), "s", "p")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got.Model)
}

func TestCompleteErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantSubstr string
	}{
		{"api error", http.StatusTooManyRequests, `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`, audit.ErrUpstream, "You exceeded your current quota"},
		{"plain error body", http.StatusBadGateway, `bad gateway`, audit.ErrUpstream, "bad gateway"},
		{"no choices", http.StatusOK, `{"choices":[]}`, audit.ErrMalformed, "no choices"},
		{"invalid json", http.StatusOK, `not json`, audit.ErrMalformed, "decode completion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			text, err := New("k", WithBaseURL(srv.URL)).Complete(context.Background(), "s", "p")
			require.Error(t, err)
			assert.Empty(t, text)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantSubstr)
		})
	}
}
