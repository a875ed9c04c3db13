package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const chatURIPrefix = "chat://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			chatURIPrefix+"{user_id}",
			"Chat history with a matched user",
			mcp.WithTemplateDescription(
				"The first page of messages exchanged with a matched user, oldest first."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleChatResource,
	)
}

func (s *Server) handleChatResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, chatURIPrefix) {
		return nil, fmt.Errorf("invalid chat URI format: %s", uri)
	}

	userID, err := strconv.ParseInt(strings.TrimPrefix(uri, chatURIPrefix), 10, 64)
	if err != nil || userID < 1 {
		return nil, fmt.Errorf("invalid user id in URI: %s", uri)
	}

	messages, err := s.client.ListChatMessages(ctx, userID, 1, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat with user %d: %w", userID, err)
	}

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
