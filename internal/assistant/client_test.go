package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsCandidateText(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)

		resp := geminiResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "Keep roses "}, {Text: "in cool water."}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, "gemini-2.5-flash")
	text, err := c.Generate(context.Background(), "care tips")
	require.NoError(t, err)
	assert.Equal(t, "Keep roses in cool water.", text)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, "gemini-2.5-flash")
	_, err := c.Generate(context.Background(), "care tips")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer server.Close()

	c := NewClient("test-key", server.URL, "gemini-2.5-flash")
	_, err := c.Generate(context.Background(), "care tips")
	require.Error(t, err)
}

func TestClientDisabledWithoutAPIKey(t *testing.T) {
	c := NewClient("", "http://unused", "gemini-2.5-flash")
	assert.False(t, c.Enabled())

	_, err := c.Generate(context.Background(), "care tips")
	require.Error(t, err)
}
