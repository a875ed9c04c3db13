// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mutualmatch/mutual-backend/cmd/mcp/client"
)

// Server exposes one user's matches, votes and chat history to MCP clients.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"mutual-backend",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run serves MCP over stdio.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_matches",
		mcp.WithDescription("List the users you have matched with, most recent first."),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of matches per page (default: 50, max: 200)"),
		),
	), s.handleListMatches)

	s.mcpServer.AddTool(mcp.NewTool("list_interactions",
		mcp.WithDescription("List the profiles you have liked or disliked, most recent first."),
		mcp.WithString("vote",
			mcp.Description("Which votes to list: 'like' (default) or 'dislike'"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of profiles per page (default: 50, max: 200)"),
		),
	), s.handleListInteractions)

	s.mcpServer.AddTool(mcp.NewTool("vote",
		mcp.WithDescription(
			"Like or dislike another user's profile. "+
				"A like on someone who already liked you creates a match and opens a chat room."),
		mcp.WithNumber("user_id",
			mcp.Required(),
			mcp.Description("ID of the user to vote on"),
		),
		mcp.WithString("vote",
			mcp.Required(),
			mcp.Description("'like' or 'dislike'"),
		),
	), s.handleVote)

	s.mcpServer.AddTool(mcp.NewTool("list_chat_messages",
		mcp.WithDescription("Read the chat history with a matched user, oldest first."),
		mcp.WithNumber("user_id",
			mcp.Required(),
			mcp.Description("ID of the matched user"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of messages per page (default: 50, max: 200)"),
		),
	), s.handleListChatMessages)
}
