// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Metadata is the structured summary attached to a matched reference.
// Field names mirror the tool's JSON output contract; Year is a pointer
// so an unknown year serializes as null rather than 0.
type Metadata struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Year    *int     `json:"year"`
	Journal string   `json:"journal"`
	Volume  string   `json:"volume"`
	Issue   string   `json:"issue"`
	Pages   string   `json:"pages"`
}

// ValidationResult is the outcome of validating one reference. It is a
// value type, created once per input and never mutated. DOI is the full
// https://doi.org/ link for matches and "N/A" otherwise; Metadata is nil
// for unmatched references.
type ValidationResult struct {
	Original  string    `json:"original"`
	Formatted string    `json:"formatted"`
	DOI       string    `json:"doi"`
	Metadata  *Metadata `json:"metadata"`
}

// Summary counts batch outcomes, partitioned on whether a DOI was found.
type Summary struct {
	Total    int `json:"total"`
	Found    int `json:"found"`
	NotFound int `json:"not_found"`
}

// BatchOutput is the aggregate result of validate_references.
type BatchOutput struct {
	Results []ValidationResult `json:"results"`
	Summary Summary            `json:"summary"`
}
