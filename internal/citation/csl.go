// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form.
// The field names follow the CSL-JSON/CSL-YAML schema so that output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes a work record as a one-element CSL-YAML list to w.
func WriteCSL(work *types.Work, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode([]CSLItem{toCSLItem(work)})
}

func toCSLItem(w *types.Work) CSLItem {
	item := CSLItem{
		ID:             w.DOI,
		Type:           "article-journal",
		Title:          w.FirstTitle(),
		ContainerTitle: w.Journal(),
		Volume:         w.Volume,
		Issue:          w.Issue,
		Page:           w.Page,
		DOI:            w.DOI,
	}
	for _, a := range w.Author {
		item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
	}
	if y, ok := w.Year(); ok {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}
	return item
}
