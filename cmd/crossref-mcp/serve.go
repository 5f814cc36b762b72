// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref-mcp/internal/cache"
	"github.com/pdiddy/crossref-mcp/internal/crossref"
	"github.com/pdiddy/crossref-mcp/internal/logging"
	"github.com/pdiddy/crossref-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the citation tools to an MCP client over stdio",
	Long: `Serve speaks the Model Context Protocol on stdin/stdout and registers two
tools: validate_references (batch validation with a match summary) and
format_reference (single citation, by free text or DOI).

All diagnostics go to stderr; stdout carries only the protocol stream.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := logging.New(cfg.Logging)

	var store *cache.Store
	if cfg.Cache.Path != "" {
		var err error
		store, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		logger.Info().Str("path", cfg.Cache.Path).Msg("lookup cache enabled")
	}

	client := crossref.New(cfg.Crossref, store, logger)
	srv := server.New(client, logger)
	return srv.Run(cmd.Context(), &mcp.StdioTransport{}, version)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
