// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the crossref-mcp tools.
package types

// Work is one bibliographic record as returned by the CrossRef works API.
// The JSON field names follow the CSL-JSON conventions CrossRef uses
// ("DOI" upper-case, array-valued title and container-title). Any field
// may be absent in a real record; consumers default to empty values.
type Work struct {
	DOI             string     `json:"DOI,omitempty"`
	Title           []string   `json:"title,omitempty"`
	Author          []Author   `json:"author,omitempty"`
	ContainerTitle  []string   `json:"container-title,omitempty"`
	Volume          string     `json:"volume,omitempty"`
	Issue           string     `json:"issue,omitempty"`
	Page            string     `json:"page,omitempty"`
	PublishedPrint  *DateParts `json:"published-print,omitempty"`
	PublishedOnline *DateParts `json:"published-online,omitempty"`
}

// Author is a contributor name in CSL family/given form.
type Author struct {
	Family string `json:"family,omitempty"`
	Given  string `json:"given,omitempty"`
}

// DateParts is the CSL date representation: the first element of the
// first inner array is the year.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// Year returns the year component, or false when no date-parts are present.
func (d *DateParts) Year() (int, bool) {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0, false
	}
	return d.DateParts[0][0], true
}

// Year returns the publication year, preferring the print date over the
// online date.
func (w *Work) Year() (int, bool) {
	if y, ok := w.PublishedPrint.Year(); ok {
		return y, true
	}
	return w.PublishedOnline.Year()
}

// FirstTitle returns the first title element, or "" when absent.
func (w *Work) FirstTitle() string { return firstOrEmpty(w.Title) }

// Journal returns the first container-title element, or "" when absent.
func (w *Work) Journal() string { return firstOrEmpty(w.ContainerTitle) }

func firstOrEmpty(ss []string) string {
	if len(ss) > 0 {
		return ss[0]
	}
	return ""
}
