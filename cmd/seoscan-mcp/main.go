package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"seoscan/internal/config"
	"seoscan/internal/log"
	"seoscan/internal/service"
)

func init() {
	log.InitLogger()
	config.LoadEnv()
}

func main() {
	defer log.Sync()

	scanner := service.NewScanner(service.Options{ChromeTLS: config.AppConfig.ChromeTLS})

	s := server.NewMCPServer(
		"seoscan",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	scanSEOTool := mcp.NewTool("scan_seo",
		mcp.WithDescription("Fetch a web page and return its SEO report: extracted metadata, seven feedback checks, a 0-100 score and its band."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The page to scan. A bare domain such as example.com is fetched over https."),
		),
	)
	s.AddTool(scanSEOTool, handleScanSEO(scanner))

	seoDataTool := mcp.NewTool("seo_data",
		mcp.WithDescription("Fetch a web page and return only the extracted SEO metadata, without feedback or score."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The page to scan"),
		),
	)
	s.AddTool(seoDataTool, handleSEOData(scanner))

	// stdout carries the protocol, so logs go to stderr only
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
