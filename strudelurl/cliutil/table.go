package cliutil

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTable creates a new styled table writer.
// If w is nil, writes to the configured output.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(writerOrDefault(w))

	if Output.ColorsEnabled() {
		t.SetStyle(StyleLight())
	} else {
		t.SetStyle(StyleSimple())
	}

	return t
}

// MutedColumn returns a column config that renders the column faint when colors are enabled.
// colNum is the 1-based column number, as go-pretty expects.
func MutedColumn(colNum int) table.ColumnConfig {
	cfg := table.ColumnConfig{Number: colNum}
	if Output.ColorsEnabled() {
		cfg.Colors = text.Colors{text.Faint}
	}
	return cfg
}
