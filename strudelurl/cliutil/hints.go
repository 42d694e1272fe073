package cliutil

import (
	"fmt"
	"io"
)

func writerOrDefault(w io.Writer) io.Writer {
	if w != nil {
		return w
	} else if Output != nil && Output.Writer != nil {
		return Output.Writer
	}
	return io.Discard
}

// Hint prints a muted hint message.
func Hint(w io.Writer, message string) {
	_, _ = fmt.Fprintln(writerOrDefault(w), Muted(message))
}

// HintCommand prints a command suggestion with description.
func HintCommand(w io.Writer, desc, cmd string) {
	_, _ = fmt.Fprintf(writerOrDefault(w), "%s: %s\n", Muted(desc), ID(cmd))
}

// Summary prints a count summary line.
func Summary(w io.Writer, count int, singular, plural string) {
	noun := plural
	if count == 1 {
		noun = singular
	}
	_, _ = fmt.Fprintf(writerOrDefault(w), "\n%s\n", Muted(fmt.Sprintf("%d %s", count, noun)))
}

// NoResults prints a "no results" message.
func NoResults(w io.Writer, message string) {
	_, _ = fmt.Fprintln(writerOrDefault(w), Muted(message))
}
