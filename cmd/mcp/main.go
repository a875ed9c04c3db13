// Package main runs an MCP server over stdio that acts as one mutual-backend user.
//
// Configuration:
//
//	MUTUAL_API_URL   - Base URL of the API (default: http://localhost:8080)
//	MUTUAL_API_TOKEN - Access token for the user, as printed by cmd/devtoken (required)
package main

import (
	"log"
	"os"

	"github.com/mutualmatch/mutual-backend/cmd/mcp/client"
	"github.com/mutualmatch/mutual-backend/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("MUTUAL_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("MUTUAL_API_TOKEN")
	if apiToken == "" {
		log.Fatal("MUTUAL_API_TOKEN environment variable is required")
	}

	srv := server.NewServer(client.NewClient(apiURL, apiToken))
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
