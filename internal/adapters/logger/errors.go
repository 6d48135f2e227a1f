package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, such as *zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain from the outermost error. Links with an
// empty message only carry metadata, which is merged into the previous entry.
// A standard error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" && len(entries) > 0 {
			last := &entries[len(entries)-1]
			if last.Metadata == nil {
				last.Metadata = map[string]any{}
			}
			maps.Copy(last.Metadata, meta)
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders:
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
//	      key: value
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, e := range entries {
		head, indent := "Error: ", "       "
		if i > 0 {
			head, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		msgLines := strings.Split(e.Message, "\n")
		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			valueLines := strings.Split(fmt.Sprint(e.Metadata[k]), "\n")
			if len(valueLines) == 1 {
				lines = append(lines, indent+k+": "+valueLines[0])
				continue
			}
			lines = append(lines, indent+k+":")
			for _, line := range valueLines {
				lines = append(lines, indent+"  "+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}
