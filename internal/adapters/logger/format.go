package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/freeze/internal/ui/style"
)

// messager matches zerr.Error, which reports its own message without the cause chain.
type messager interface {
	Message() string
}

// metadataer matches zerr.Error metadata access.
type metadataer interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks err's chain, one entry per layer.
// zerr layers without a message only carry metadata; it is attached to the next layer that has one.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	pending := map[string]any{}

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		if md, ok := current.(metadataer); ok {
			maps.Copy(pending, md.Metadata())
		}
		if m.Message() != "" {
			entries = append(entries, errorEntry{message: m.Message(), metadata: pending})
			pending = map[string]any{}
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the outermost entry as the headline and the rest as causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.message+formatMetadata(e.metadata), "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any) string {
	if len(md) == 0 {
		return ""
	}

	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(md)) {
		_, _ = fmt.Fprintf(&b, " %s=%v", k, md[k])
	}
	return b.String()
}
