// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Style selects the citation convention.
type Style string

const (
	StyleAPA     Style = "apa"
	StyleHarvard Style = "harvard"
)

// Format selects the rendered output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseStyle validates a style argument. The empty string selects the
// default (apa); anything outside the known set is an error.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "":
		return StyleAPA, nil
	case StyleAPA, StyleHarvard:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown citation style %q: use apa or harvard", s)
	}
}

// ParseFormat validates a format_type argument. The empty string selects
// the default (markdown).
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatMarkdown, nil
	case FormatMarkdown, FormatText:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format type %q: use markdown or text", s)
	}
}
