package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lydakis/bulcmcp/internal/tools"
)

type toolListEntry struct {
	Name        string `json:"name" yaml:"name"`
	Group       string `json:"group" yaml:"group"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool   `json:"readOnly" yaml:"readOnly"`
	Destructive bool   `json:"destructive" yaml:"destructive"`
}

func toolListEntries(list []tools.Tool, verbose bool) []toolListEntry {
	entries := make([]toolListEntry, 0, len(list))
	for _, t := range list {
		desc := t.Description
		if !verbose {
			desc = firstSentence(desc)
		}
		entries = append(entries, toolListEntry{
			Name:        t.Name,
			Group:       t.Group,
			Description: desc,
			ReadOnly:    t.ReadOnly,
			Destructive: t.Destructive,
		})
	}
	return entries
}

func writeToolListText(w io.Writer, entries []toolListEntry) error {
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		line := name
		if desc := strings.TrimSpace(entry.Description); desc != "" {
			line += "\t" + desc
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("writing tool list output: %w", err)
		}
	}
	return nil
}

func firstSentence(desc string) string {
	desc = strings.TrimSpace(desc)
	if i := strings.Index(desc, ". "); i >= 0 {
		return desc[:i+1]
	}
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		return strings.TrimSpace(desc[:i])
	}
	return desc
}
