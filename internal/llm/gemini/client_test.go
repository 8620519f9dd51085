package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "gemini-2.5-flash-lite")
	assert.Error(t, err)

	_, err = NewClient("key", " ")
	assert.Error(t, err)

	c, err := NewClient("key", "gemini-2.5-flash-lite")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent"))
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "say hi", req.Contents[0].Parts[0].Text)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "  hi there\n"}}}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient("secret", "test-model", WithBaseURL(srv.URL))
	require.NoError(t, err)

	got, err := c.GenerateText(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hi there", got)
}

func TestGenerateTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "bad key", "status": "INVALID_ARGUMENT"},
		})
	}))
	defer srv.Close()

	c, err := NewClient("secret", "test-model", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.GenerateText(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c, err := NewClient("secret", "test-model", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.GenerateText(context.Background(), "x")
	assert.Error(t, err)
}
