package cliutil

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

func formatColor(c text.Color, s string) string {
	if !Output.ColorsEnabled() {
		return s
	}
	return c.Sprint(s)
}

// diffLineColor returns the color for a line of unified diff output.
func diffLineColor(line string) text.Color {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return text.Bold
	case strings.HasPrefix(line, "@@"):
		return text.FgCyan
	case strings.HasPrefix(line, "+"):
		return text.FgGreen
	case strings.HasPrefix(line, "-"):
		return text.FgRed
	default:
		return text.Reset
	}
}

// FormatDiffLine returns a colored unified diff line.
func FormatDiffLine(line string) string {
	c := diffLineColor(line)
	if c == text.Reset {
		return line
	}
	return formatColor(c, line)
}

// Muted returns text with faint/dim formatting.
func Muted(s string) string {
	return formatColor(text.Faint, s)
}

// ID returns text formatted as an identifier.
func ID(s string) string {
	return formatColor(text.FgCyan, s)
}

// Success returns text formatted as success.
func Success(s string) string {
	return formatColor(text.FgGreen, s)
}

// Warning returns text formatted as warning.
func Warning(s string) string {
	return formatColor(text.FgYellow, s)
}

// Error returns text formatted as error.
func Error(s string) string {
	return formatColor(text.FgRed, s)
}
