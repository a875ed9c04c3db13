package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	voteLike    = 1
	voteDislike = -1
)

func (s *Server) handleListMatches(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request.GetArguments())

	matches, err := s.client.ListMatches(ctx, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list matches: %v", err)), nil
	}

	return formatListResult("match(es)", "No matches yet.", matches)
}

func (s *Server) handleListInteractions(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	vote := voteLike
	if v, ok := args["vote"].(string); ok && v != "" {
		parsed, err := parseVote(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		vote = parsed
	}
	page, pageSize := parsePagination(args)

	interactions, err := s.client.ListInteractions(ctx, vote, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list interactions: %v", err)), nil
	}

	return formatListResult("profile(s)", "No profiles found.", interactions)
}

func (s *Server) handleVote(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := parseUserID(args)
	if !ok {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	v, ok := args["vote"].(string)
	if !ok || v == "" {
		return mcp.NewToolResultError("vote is required (must be 'like' or 'dislike')"), nil
	}
	vote, err := parseVote(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.Vote(ctx, userID, vote)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to vote: %v", err)), nil
	}

	return mcp.NewToolResultText(result.Message), nil
}

func (s *Server) handleListChatMessages(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := parseUserID(args)
	if !ok {
		return mcp.NewToolResultError("user_id is required"), nil
	}
	page, pageSize := parsePagination(args)

	messages, err := s.client.ListChatMessages(ctx, userID, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list chat messages: %v", err)), nil
	}

	return formatListResult("message(s)", "No messages yet.", messages)
}

func parseVote(s string) (int, error) {
	switch strings.ToLower(s) {
	case "like":
		return voteLike, nil
	case "dislike":
		return voteDislike, nil
	default:
		return 0, fmt.Errorf("vote must be 'like' or 'dislike'")
	}
}

func parseUserID(args map[string]any) (int64, bool) {
	id, ok := args["user_id"].(float64)
	if !ok || id < 1 {
		return 0, false
	}
	return int64(id), true
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 50

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 200)
	}
	return page, pageSize
}

func formatListResult[T any](noun, empty string, items []T) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText(empty), nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format results: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d %s:\n\n%s", len(items), noun, string(data))), nil
}
