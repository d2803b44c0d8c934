// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultIndent = "  "

// TreeWriter accumulates indented lines, one per tree node.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: defaultIndent,
	}
}

// WithIndent replaces indentation unit used for every depth level.
func (tw *TreeWriter) WithIndent(indent string) *TreeWriter {
	tw.indent = indent
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

// Line writes formatted line at given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line, value is quoted unless empty.
func (tw *TreeWriter) Field(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(quote(value))
	tw.w.WriteByte('\n')
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
