// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref-mcp/internal/cache"
	"github.com/pdiddy/crossref-mcp/internal/citation"
	"github.com/pdiddy/crossref-mcp/internal/crossref"
	"github.com/pdiddy/crossref-mcp/internal/logging"
	"github.com/pdiddy/crossref-mcp/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [reference...]",
	Short: "Resolve one reference and print the formatted citation",
	Long: `Lookup resolves a single reference against CrossRef and prints the
formatted citation followed by the DOI link. Pass free text as arguments,
or --doi to fetch a specific record directly.

With --csl the record is printed as CSL-YAML instead, suitable for a
Pandoc bibliography file.`,
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	doi, _ := cmd.Flags().GetString("doi")
	query := strings.TrimSpace(strings.Join(args, " "))
	if doi == "" && query == "" {
		return fmt.Errorf("reference text or --doi required")
	}

	styleFlag, _ := cmd.Flags().GetString("style")
	formatFlag, _ := cmd.Flags().GetString("format")
	style, err := types.ParseStyle(styleFlag)
	if err != nil {
		return err
	}
	format, err := types.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	logger := logging.New(cfg.Logging)

	var store *cache.Store
	if cfg.Cache.Path != "" {
		store, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	client := crossref.New(cfg.Crossref, store, logger)

	var work *types.Work
	if doi != "" {
		work, err = client.WorkByDOI(cmd.Context(), doi)
		if err != nil {
			return err
		}
	} else {
		work, err = client.SearchWork(cmd.Context(), query)
		if err != nil {
			return err
		}
		if work == nil {
			return fmt.Errorf("no match for %q", query)
		}
	}

	if csl, _ := cmd.Flags().GetBool("csl"); csl {
		return citation.WriteCSL(work, os.Stdout)
	}

	formatted, err := citation.Format(work, style, format)
	if err != nil {
		return err
	}
	fmt.Println(formatted)
	if work.DOI != "" {
		fmt.Println("https://doi.org/" + work.DOI)
	}
	return nil
}

func init() {
	lookupCmd.Flags().String("doi", "", "fetch this DOI directly instead of searching")
	lookupCmd.Flags().String("style", "apa", "citation style: apa or harvard")
	lookupCmd.Flags().String("format", "markdown", "output format: markdown or text")
	lookupCmd.Flags().Bool("csl", false, "print the record as CSL-YAML")

	rootCmd.AddCommand(lookupCmd)
}
