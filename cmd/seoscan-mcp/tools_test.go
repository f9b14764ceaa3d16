package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"seoscan/internal/log"
	"seoscan/internal/model"
	"seoscan/internal/service"
)

func TestMain(m *testing.M) {
	log.Logger = zap.NewNop()
	m.Run()
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Name = "scan_seo"
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatalf("result has no content")
	}
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", c)
		return ""
	}
}

func TestHandleScanSEO(t *testing.T) {
	scanner := service.NewScanner(service.Options{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html><head><title>Hello</title></head></html>")),
			Request:    r,
		}, nil
	})})

	result, err := handleScanSEO(scanner)(context.Background(), callRequest(map[string]any{"url": "example.com"}))
	if err != nil {
		t.Fatalf("handler unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("result is an error: %s", resultText(t, result))
	}

	var report model.Report
	if err := json.Unmarshal([]byte(resultText(t, result)), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if model.Value(report.Data.Title) != "Hello" {
		t.Errorf("title = %q, want Hello", model.Value(report.Data.Title))
	}
	if len(report.Feedback) != 7 {
		t.Errorf("feedback has %d items, want 7", len(report.Feedback))
	}
}

func TestHandleErrors(t *testing.T) {
	scanner := service.NewScanner(service.Options{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, &net.DNSError{Err: "no such host", Name: r.URL.Hostname(), IsNotFound: true}
	})})

	tests := []struct {
		name     string
		handler  server.ToolHandlerFunc
		args     map[string]any
		expected string
	}{
		{name: "Missing url", handler: handleScanSEO(scanner), args: map[string]any{}, expected: "URL is required"},
		{name: "Blank url", handler: handleSEOData(scanner), args: map[string]any{"url": " "}, expected: "URL is required"},
		{name: "Unknown domain", handler: handleSEOData(scanner), args: map[string]any{"url": "nonexistent.invalid"}, expected: "Domain not found. Please check the URL."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(context.Background(), callRequest(tt.args))
			if err != nil {
				t.Fatalf("handler unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatalf("result is not an error")
			}
			if got := resultText(t, result); got != tt.expected {
				t.Errorf("message = %q, want %q", got, tt.expected)
			}
		})
	}
}
