// FILE: pkdgrav/simconfig/document.go
package simconfig

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// DocEntry is the documentation record of one parameter.
type DocEntry struct {
	Default any    `toml:"default"`
	Help    string `toml:"help"`
	Docs    string `toml:"docs,omitempty"`
	Flag    string `toml:"flag,omitempty"`
}

// Document maps group label -> key -> entry. Parameters without a group are
// listed under UngroupedLabel.
type Document map[string]map[string]DocEntry

// UngroupedLabel is the section used for descriptors with no group.
const UngroupedLabel = "General"

// Document exports {default, help} for every parameter grouped by label.
// Absent defaults are exported as "" which renderers show as "none".
func (r *Registry) Document() Document {
	doc := make(Document)
	for _, d := range r.Descriptors() {
		group := d.Group
		if group == "" {
			group = UngroupedLabel
		}
		if doc[group] == nil {
			doc[group] = make(map[string]DocEntry)
		}

		def := d.Default
		if def == nil {
			def = ""
		}
		doc[group][d.Key] = DocEntry{
			Default: def,
			Help:    d.Help,
			Docs:    d.Docs,
			Flag:    d.Flag(),
		}
	}
	return doc
}

// WriteDocument encodes the parameter document as TOML, one table per group.
func (r *Registry) WriteDocument(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(r.Document()); err != nil {
		return fmt.Errorf("failed to encode parameter document: %w", err)
	}
	return nil
}
