// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes reference validation and citation formatting as
// MCP tools over a stdio transport.
package server

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/crossref-mcp/internal/citation"
	"github.com/pdiddy/crossref-mcp/internal/validate"
	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// DOILookupFailedText is returned verbatim when the direct-DOI path of
// format_reference fails for any reason. Clients match on it.
const DOILookupFailedText = "Failed to retrieve reference by DOI"

// Fetcher is the lookup surface the tool handlers need. *crossref.Client
// satisfies it through the validator's Fetcher plus the per-DOI endpoint.
type Fetcher interface {
	validate.Fetcher
	WorkByDOI(ctx context.Context, doi string) (*types.Work, error)
}

// ValidateReferencesArgs is the input for the validate_references tool.
type ValidateReferencesArgs struct {
	References []string `json:"references"`
	Style      string   `json:"style,omitempty"`
	FormatType string   `json:"format_type,omitempty"`
}

// FormatReferenceArgs is the input for the format_reference tool. Either
// a free-text reference or a DOI may be supplied; the DOI wins.
type FormatReferenceArgs struct {
	Reference  string `json:"reference,omitempty"`
	DOI        string `json:"doi,omitempty"`
	Style      string `json:"style,omitempty"`
	FormatType string `json:"format_type,omitempty"`
}

// FormatReferenceOutput is the format_reference result payload.
type FormatReferenceOutput struct {
	Formatted string `json:"formatted"`
	DOI       string `json:"doi"`
}

// Server wires the validator and the CrossRef fetcher into MCP tools.
type Server struct {
	fetcher   Fetcher
	validator *validate.Validator
	logger    zerolog.Logger
}

// New builds a Server around the given fetcher.
func New(fetcher Fetcher, logger zerolog.Logger) *Server {
	return &Server{
		fetcher:   fetcher,
		validator: &validate.Validator{Fetcher: fetcher, Logger: logger},
		logger:    logger,
	}
}

// ValidateReferencesTool declares the validate_references tool.
func ValidateReferencesTool() *mcp.Tool {
	schema, err := jsonschema.For[ValidateReferencesArgs](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "validate_references",
		Description: "Validates a batch of references using the CrossRef API",
		InputSchema: schema,
	}
}

// FormatReferenceTool declares the format_reference tool.
func FormatReferenceTool() *mcp.Tool {
	schema, err := jsonschema.For[FormatReferenceArgs](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "format_reference",
		Description: "Formats a single reference using CrossRef data",
		InputSchema: schema,
	}
}

// HandleValidateReferences resolves each reference independently and
// returns the per-reference results plus a summary.
func (s *Server) HandleValidateReferences(ctx context.Context, req *mcp.CallToolRequest, args ValidateReferencesArgs) (*mcp.CallToolResult, *types.BatchOutput, error) {
	style, format, err := parseRendering(args.Style, args.FormatType)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int("references", len(args.References)).
		Str("style", string(style)).Str("format", string(format)).
		Msg("validate_references called")

	out := s.validator.ValidateBatch(ctx, args.References, style, format)
	return nil, &out, nil
}

// HandleFormatReference formats one reference. With a DOI the record is
// fetched directly and any failure collapses to a fixed text result;
// otherwise the free-text validation path is used.
func (s *Server) HandleFormatReference(ctx context.Context, req *mcp.CallToolRequest, args FormatReferenceArgs) (*mcp.CallToolResult, *FormatReferenceOutput, error) {
	style, format, err := parseRendering(args.Style, args.FormatType)
	if err != nil {
		return nil, nil, err
	}

	if args.DOI != "" {
		work, err := s.fetcher.WorkByDOI(ctx, args.DOI)
		if err != nil {
			s.logger.Error().Err(err).Str("doi", args.DOI).Msg("DOI lookup failed")
			return textResult(DOILookupFailedText), nil, nil
		}
		formatted, err := citation.Format(work, style, format)
		if err != nil {
			s.logger.Error().Err(err).Str("doi", args.DOI).Msg("citation formatting failed")
			formatted = validate.ParseFailedText
		}
		return nil, &FormatReferenceOutput{
			Formatted: formatted,
			DOI:       fmt.Sprintf("https://doi.org/%s", args.DOI),
		}, nil
	}

	r := s.validator.Validate(ctx, args.Reference, style, format)
	return nil, &FormatReferenceOutput{Formatted: r.Formatted, DOI: r.DOI}, nil
}

// Run registers the tools and serves MCP over the given transport until
// the context is cancelled or the peer disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport, version string) error {
	impl := &mcp.Implementation{Name: "crossref-mcp", Version: version}
	m := mcp.NewServer(impl, nil)
	mcp.AddTool(m, ValidateReferencesTool(), s.HandleValidateReferences)
	mcp.AddTool(m, FormatReferenceTool(), s.HandleFormatReference)

	s.logger.Info().Str("version", version).Msg("starting MCP server")
	return m.Run(ctx, transport)
}

func parseRendering(style, format string) (types.Style, types.Format, error) {
	st, err := types.ParseStyle(style)
	if err != nil {
		return "", "", err
	}
	ft, err := types.ParseFormat(format)
	if err != nil {
		return "", "", err
	}
	return st, ft, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
