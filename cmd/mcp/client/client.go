// Package client provides an HTTP client for the mutual-backend REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Match struct {
	User      User      `json:"user"`
	RoomID    string    `json:"room_id"`
	MatchedAt time.Time `json:"matched_at"`
}

type Interaction struct {
	User      User      `json:"user"`
	Vote      int       `json:"vote"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatMessage struct {
	Message        string `json:"message"`
	SenderID       int64  `json:"senderID"`
	SenderUsername string `json:"senderUsername"`
	Timestamp      string `json:"timestamp"`
}

type VoteResult struct {
	Message      string `json:"message"`
	Changed      bool   `json:"changed"`
	MatchCreated bool   `json:"matchCreated"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// Client is an HTTP client for the mutual-backend API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func paginationParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return params
}

func (c *Client) ListMatches(ctx context.Context, page, pageSize int) ([]Match, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/matches?"+paginationParams(page, pageSize).Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result listResponse[Match]
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) ListInteractions(ctx context.Context, vote, page, pageSize int) ([]Interaction, error) {
	params := paginationParams(page, pageSize)
	params.Set("vote", strconv.Itoa(vote))

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/interactions?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result listResponse[Interaction]
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) Vote(ctx context.Context, targetUserID int64, vote int) (*VoteResult, error) {
	body, err := json.Marshal(map[string]int{"vote": vote})
	if err != nil {
		return nil, fmt.Errorf("encoding vote: %w", err)
	}

	path := "/v1/interactions/" + strconv.FormatInt(targetUserID, 10)
	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result VoteResult
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListChatMessages(ctx context.Context, peerUserID int64, page, pageSize int) ([]ChatMessage, error) {
	path := fmt.Sprintf("/v1/chat/%d/messages?%s", peerUserID, paginationParams(page, pageSize).Encode())
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result listResponse[ChatMessage]
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}
