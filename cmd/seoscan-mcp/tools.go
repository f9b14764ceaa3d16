package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"seoscan/internal/config"
	"seoscan/internal/service"
)

func handleScanSEO(scanner *service.Scanner) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, errResult := requireURL(request)
		if errResult != nil {
			return errResult, nil
		}

		report, err := scanner.Report(ctx, target)
		if err != nil {
			return mcp.NewToolResultError(service.AsScanError(err).Message), nil
		}
		return jsonResult(report)
	}
}

func handleSEOData(scanner *service.Scanner) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target, errResult := requireURL(request)
		if errResult != nil {
			return errResult, nil
		}

		record, err := scanner.Scan(ctx, target)
		if err != nil {
			return mcp.NewToolResultError(service.AsScanError(err).Message), nil
		}
		return jsonResult(record)
	}
}

func requireURL(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	target, err := request.RequireString("url")
	if err != nil || strings.TrimSpace(target) == "" {
		return "", mcp.NewToolResultError(config.ErrURLRequired)
	}
	return strings.TrimSpace(target), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
