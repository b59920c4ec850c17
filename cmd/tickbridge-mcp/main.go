package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "tickbridge/internal/adapters/mcp"
	"tickbridge/internal/adapters/ticktick"
	"tickbridge/internal/config"
)

func main() {
	authFlag := flag.String("auth", "", "auth method: token, oauth2 or session")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("tickbridge-mcp: %v", err)
	}
	if *authFlag != "" {
		cfg.AuthMethod = *authFlag
	}
	method, err := cfg.Method()
	if err != nil {
		log.Fatalf("tickbridge-mcp: %v", err)
	}

	client := ticktick.NewClient(cfg, ticktick.WithBaseURLs(cfg.OpenBaseURL, cfg.SessionBaseURL))
	gateway := ticktick.NewRepository(client, method)

	mcpServer := server.NewMCPServer(
		"tickbridge-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, gateway)
	mcpadapter.RegisterWriteTools(mcpServer, gateway)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tickbridge-mcp: %v", err)
	}
}
