// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation renders CrossRef work records as formatted citation
// strings. Formatting is a pure function of the record and the selected
// style and output format.
package citation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// Format renders a work in the given style and output format. The four
// supported (style, format) combinations each have a fixed template; any
// other pair is an error rather than a silent fallback.
func Format(w *types.Work, style types.Style, format types.Format) (string, error) {
	authors := AuthorString(w.Author)
	year := yearString(w)
	title := w.FirstTitle()
	journal := w.Journal()

	switch {
	case style == types.StyleAPA && format == types.FormatMarkdown:
		return fmt.Sprintf("%s (%s). %s. *%s*, *%s*(%s), %s.",
			authors, year, title, journal, w.Volume, w.Issue, w.Page), nil
	case style == types.StyleAPA && format == types.FormatText:
		return fmt.Sprintf("%s (%s). %s. %s, %s(%s), %s.",
			authors, year, title, journal, w.Volume, w.Issue, w.Page), nil
	case style == types.StyleHarvard && format == types.FormatMarkdown:
		return fmt.Sprintf("%s (%s) '%s', *%s*, %s(%s), pp. %s.",
			authors, year, title, journal, w.Volume, w.Issue, w.Page), nil
	case style == types.StyleHarvard && format == types.FormatText:
		return fmt.Sprintf("%s (%s) '%s', %s, %s(%s), pp. %s.",
			authors, year, title, journal, w.Volume, w.Issue, w.Page), nil
	default:
		return "", fmt.Errorf("unsupported citation style/format combination: %s/%s", style, format)
	}
}

// AuthorString joins authors as "Family, I.I." separated by " & ".
// Entries missing either the family or the given name are skipped.
func AuthorString(authors []types.Author) string {
	var parts []string
	for _, a := range authors {
		if a.Family == "" || a.Given == "" {
			continue
		}
		parts = append(parts, a.Family+", "+Initials(a.Given))
	}
	return strings.Join(parts, " & ")
}

// Initials converts a given name into run-together initials:
// "Jane Quinn" -> "J.Q.".
func Initials(given string) string {
	var b strings.Builder
	for _, token := range strings.Fields(given) {
		r := []rune(token)
		b.WriteRune(r[0])
		b.WriteByte('.')
	}
	return b.String()
}

func yearString(w *types.Work) string {
	if y, ok := w.Year(); ok {
		return strconv.Itoa(y)
	}
	return ""
}
