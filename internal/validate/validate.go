// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate matches free-text references against CrossRef and
// renders them as formatted citations.
package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/crossref-mcp/internal/citation"
	"github.com/pdiddy/crossref-mcp/internal/crossref"
	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// Fixed result strings. These are part of the tool output contract:
// clients match on them, so they never change shape with the error cause.
const (
	NotFoundText    = "Failed to find a match."
	ParseFailedText = "Failed to parse metadata for formatting."
	NoDOI           = "N/A"
)

// Fetcher is the lookup surface the validator needs; *crossref.Client
// satisfies it and tests substitute fakes.
type Fetcher interface {
	SearchWork(ctx context.Context, query string) (*types.Work, error)
}

var _ Fetcher = (*crossref.Client)(nil)

// Validator resolves references through a Fetcher and formats matches.
// It carries no per-call state; one instance serves all tool calls.
type Validator struct {
	Fetcher Fetcher
	Logger  zerolog.Logger
}

// Validate resolves one reference. A record with a DOI produces a
// formatted citation, a https://doi.org/ link, and a metadata summary;
// every other outcome (no candidates, fetch failure, record without a
// DOI) produces the not-found result. Fetch failures are logged but never
// escape: a flaky network must not fail a whole batch.
func (v *Validator) Validate(ctx context.Context, reference string, style types.Style, format types.Format) types.ValidationResult {
	work, err := v.Fetcher.SearchWork(ctx, reference)
	if err != nil {
		v.Logger.Error().Err(err).Str("reference", reference).Msg("CrossRef lookup failed")
		work = nil
	}
	if work == nil || work.DOI == "" {
		return types.ValidationResult{
			Original:  reference,
			Formatted: NotFoundText,
			DOI:       NoDOI,
			Metadata:  nil,
		}
	}

	formatted, err := citation.Format(work, style, format)
	if err != nil {
		v.Logger.Error().Err(err).Str("doi", work.DOI).Msg("citation formatting failed")
		formatted = ParseFailedText
	}

	return types.ValidationResult{
		Original:  reference,
		Formatted: formatted,
		DOI:       fmt.Sprintf("https://doi.org/%s", work.DOI),
		Metadata:  metadataSummary(work),
	}
}

// ValidateBatch resolves each reference independently, in input order.
// Blank references are skipped entirely: they do not appear in the
// results and do not count toward the summary.
func (v *Validator) ValidateBatch(ctx context.Context, references []string, style types.Style, format types.Format) types.BatchOutput {
	results := []types.ValidationResult{}
	found := 0
	for _, ref := range references {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		r := v.Validate(ctx, ref, style, format)
		if r.DOI != NoDOI {
			found++
		}
		results = append(results, r)
	}

	return types.BatchOutput{
		Results: results,
		Summary: types.Summary{
			Total:    len(results),
			Found:    found,
			NotFound: len(results) - found,
		},
	}
}

// metadataSummary extracts the structured summary for a matched record.
// Unlike the citation author string, the summary lists every author,
// including entries with a missing name component.
func metadataSummary(w *types.Work) *types.Metadata {
	md := &types.Metadata{
		Title:   w.FirstTitle(),
		Authors: []string{},
		Journal: w.Journal(),
		Volume:  w.Volume,
		Issue:   w.Issue,
		Pages:   w.Page,
	}
	for _, a := range w.Author {
		md.Authors = append(md.Authors, fmt.Sprintf("%s, %s", a.Family, a.Given))
	}
	if y, ok := w.Year(); ok {
		md.Year = &y
	}
	return md
}
