package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	ansiFaint = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

func TestHint(t *testing.T) {
	t.Run("no_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorNever,
		}

		buf := &bytes.Buffer{}
		Hint(buf, "This is a hint")
		assert.Equal(t, "This is a hint\n", buf.String())
	})

	t.Run("with_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorAlways,
		}

		buf := &bytes.Buffer{}
		Hint(buf, "This is a hint")
		got := buf.String()

		assert.Contains(t, got, ansiFaint)
		assert.Contains(t, got, ansiReset)
		assert.Contains(t, got, "This is a hint")
		assert.Equal(t, ansiFaint+"This is a hint"+ansiReset+"\n", got)
	})
}

func TestHint_NilWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	Output = &OutputConfig{
		Writer:    buf,
		ColorMode: ColorNever,
	}

	// nil writer falls back to the configured output
	Hint(nil, "message")
	assert.Equal(t, "message\n", buf.String())
}

func TestHintCommand(t *testing.T) {
	t.Run("no_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorNever,
		}

		buf := &bytes.Buffer{}
		HintCommand(buf, "To open the pattern", "strudelurl decode URL")
		got := buf.String()

		assert.Equal(t, "To open the pattern: strudelurl decode URL\n", got)
	})

	t.Run("with_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorAlways,
		}

		buf := &bytes.Buffer{}
		HintCommand(buf, "To open the pattern", "strudelurl decode URL")
		got := buf.String()

		// description uses Muted (faint)
		assert.Contains(t, got, ansiFaint+"To open the pattern"+ansiReset)
		// command uses ID (cyan)
		assert.Contains(t, got, ansiCyan+"strudelurl decode URL"+ansiReset)
		// full format: "muted_desc: cyan_cmd\n"
		expected := ansiFaint + "To open the pattern" + ansiReset + ": " + ansiCyan + "strudelurl decode URL" + ansiReset + "\n"
		assert.Equal(t, expected, got)
	})
}

func TestHintCommand_NilWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	Output = &OutputConfig{
		Writer:    buf,
		ColorMode: ColorNever,
	}

	// nil writer falls back to the configured output
	HintCommand(nil, "desc", "cmd")
	assert.Equal(t, "desc: cmd\n", buf.String())
}

func TestSummary(t *testing.T) {
	t.Run("no_color", func(t *testing.T) {
		tests := []struct {
			name     string
			count    int
			singular string
			plural   string
			want     string
		}{
			{
				name:     "plural",
				count:    5,
				singular: "pattern",
				plural:   "patterns",
				want:     "\n5 patterns\n",
			},
			{
				name:     "singular",
				count:    1,
				singular: "pattern",
				plural:   "patterns",
				want:     "\n1 pattern\n",
			},
			{
				name:     "zero",
				count:    0,
				singular: "pattern",
				plural:   "patterns",
				want:     "\n0 patterns\n",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				Output = &OutputConfig{
					Writer:    &bytes.Buffer{},
					ColorMode: ColorNever,
				}

				buf := &bytes.Buffer{}
				Summary(buf, tc.count, tc.singular, tc.plural)
				assert.Equal(t, tc.want, buf.String())
			})
		}
	})

	t.Run("with_color", func(t *testing.T) {
		tests := []struct {
			name     string
			count    int
			singular string
			plural   string
			want     string
		}{
			{
				name:     "plural",
				count:    5,
				singular: "pattern",
				plural:   "patterns",
				want:     "\n" + ansiFaint + "5 patterns" + ansiReset + "\n",
			},
			{
				name:     "singular",
				count:    1,
				singular: "pattern",
				plural:   "patterns",
				want:     "\n" + ansiFaint + "1 pattern" + ansiReset + "\n",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				Output = &OutputConfig{
					Writer:    &bytes.Buffer{},
					ColorMode: ColorAlways,
				}

				buf := &bytes.Buffer{}
				Summary(buf, tc.count, tc.singular, tc.plural)
				got := buf.String()

				assert.Contains(t, got, ansiFaint)
				assert.Contains(t, got, ansiReset)
				assert.Equal(t, tc.want, got)
			})
		}
	})
}

func TestSummary_NilWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	Output = &OutputConfig{
		Writer:    buf,
		ColorMode: ColorNever,
	}

	// nil writer falls back to the configured output
	Summary(nil, 5, "pattern", "patterns")
	assert.Equal(t, "\n5 patterns\n", buf.String())
}

func TestNoResults(t *testing.T) {
	t.Run("no_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorNever,
		}

		buf := &bytes.Buffer{}
		NoResults(buf, "No pattern files found.")
		assert.Equal(t, "No pattern files found.\n", buf.String())
	})

	t.Run("with_color", func(t *testing.T) {
		Output = &OutputConfig{
			Writer:    &bytes.Buffer{},
			ColorMode: ColorAlways,
		}

		buf := &bytes.Buffer{}
		NoResults(buf, "No pattern files found.")
		got := buf.String()

		assert.Contains(t, got, ansiFaint)
		assert.Contains(t, got, ansiReset)
		assert.Equal(t, ansiFaint+"No pattern files found."+ansiReset+"\n", got)
	})
}

func TestNoResults_NilWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	Output = &OutputConfig{
		Writer:    buf,
		ColorMode: ColorNever,
	}

	// nil writer falls back to the configured output
	NoResults(nil, "No results")
	assert.Equal(t, "No results\n", buf.String())
}
