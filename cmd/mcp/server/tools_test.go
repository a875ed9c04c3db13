package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mutualmatch/mutual-backend/cmd/mcp/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)
	return NewServer(client.NewClient(api.URL, "secret"))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])
	return text.Text
}

func TestHandleVote(t *testing.T) {
	cases := []struct {
		name      string
		args      map[string]any
		wantCall  bool
		wantError bool
		wantText  string
	}{
		{
			name:     "like_creates_match",
			args:     map[string]any{"user_id": float64(2), "vote": "Like"},
			wantCall: true,
			wantText: "It's a match! You can now chat with each other.",
		},
		{
			name:      "missing_user_id",
			args:      map[string]any{"vote": "like"},
			wantError: true,
			wantText:  "user_id is required",
		},
		{
			name:      "missing_vote",
			args:      map[string]any{"user_id": float64(2)},
			wantError: true,
			wantText:  "vote is required (must be 'like' or 'dislike')",
		},
		{
			name:      "unknown_vote",
			args:      map[string]any{"user_id": float64(2), "vote": "maybe"},
			wantError: true,
			wantText:  "vote must be 'like' or 'dislike'",
		},
		{
			name:      "no_arguments",
			args:      nil,
			wantError: true,
			wantText:  "user_id is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/v1/interactions/2", r.URL.Path)
				var body map[string]int
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, voteLike, body["vote"])
				_, _ = w.Write([]byte(`{"message":"It's a match! You can now chat with each other.","changed":true,"matchCreated":true}`))
			})

			res, err := s.handleVote(t.Context(), callRequest(tc.args))
			require.NoError(t, err)
			assert.Equal(t, tc.wantError, res.IsError)
			assert.Equal(t, tc.wantText, resultText(t, res))
			assert.Equal(t, tc.wantCall, called)
		})
	}
}

func TestHandleListInteractions_PassesArguments(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/interactions", r.URL.Path)
		assert.Equal(t, "-1", r.URL.Query().Get("vote"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "200", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"data":[{"user":{"id":3,"username":"olga"},"vote":-1,"timestamp":"2024-01-01T00:00:00Z"}]}`))
	})

	res, err := s.handleListInteractions(t.Context(), callRequest(map[string]any{
		"vote":      "dislike",
		"page":      float64(3),
		"page_size": float64(500),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Found 1 profile(s)")
	assert.Contains(t, resultText(t, res), `"username": "olga"`)
}

func TestHandleListMatches_Empty(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/matches", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	res, err := s.handleListMatches(t.Context(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "No matches yet.", resultText(t, res))
}

func TestHandleListChatMessages_APIError(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/4/messages", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"you can only chat with your matches"}`))
	})

	res, err := s.handleListChatMessages(t.Context(), callRequest(map[string]any{"user_id": float64(4)}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t,
		"failed to list chat messages: API error (status 403): you can only chat with your matches",
		resultText(t, res))
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name         string
		args         map[string]any
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", args: nil, wantPage: 1, wantPageSize: 50},
		{name: "explicit", args: map[string]any{"page": float64(2), "page_size": float64(10)}, wantPage: 2, wantPageSize: 10},
		{name: "clamped", args: map[string]any{"page_size": float64(1000)}, wantPage: 1, wantPageSize: 200},
		{name: "non_positive_ignored", args: map[string]any{"page": float64(0), "page_size": float64(-3)}, wantPage: 1, wantPageSize: 50},
		{name: "wrong_type_ignored", args: map[string]any{"page": "2"}, wantPage: 1, wantPageSize: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, pageSize := parsePagination(tc.args)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
		})
	}
}
