// ABOUTME: MCP resource implementations for the fitness record store.
// ABOUTME: Provides fittrack://dashboard, fittrack://active, and fittrack://settings resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://dashboard - Enabled records per type with previous results
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://dashboard",
		Name:        "Dashboard",
		Description: "Enabled workouts, exercises, and measurements with previous results",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// fittrack://active - The in-progress workout session, if any
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://active",
		Name:        "Active Session",
		Description: "In-progress workout and its pending result records",
		MIMEType:    "application/json",
	}, s.handleActiveResource)

	// fittrack://settings - All settings
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://settings",
		Name:        "Settings",
		Description: "All application settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	dashboard, err := s.store.GetDashboard()
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return jsonResource("fittrack://dashboard", dashboard)
}

func (s *Server) handleActiveResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cores, err := s.store.GetActiveRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to get active records: %w", err)
	}

	subs, err := s.store.GetActiveSubRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to get active results: %w", err)
	}

	result := map[string]any{
		"records": cores,
		"results": subs,
	}
	return jsonResource("fittrack://active", result)
}

func (s *Server) handleSettingsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return jsonResource("fittrack://settings", settings)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
