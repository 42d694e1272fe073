package cliutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota // auto-detect based on TTY
	ColorAlways
	ColorNever
)

// ParseColorMode maps a --color flag value onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (valid: auto, always, never)", s)
	}
}

type OutputConfig struct {
	Writer    io.Writer
	ColorMode ColorMode
}

var Output *OutputConfig

func init() {
	Output = &OutputConfig{
		Writer:    os.Stdout,
		ColorMode: colorModeFromEnv(os.Getenv),
	}
}

func colorModeFromEnv(getenv func(string) string) ColorMode {
	if getenv("NO_COLOR") != "" {
		return ColorNever
	} else if getenv("FORCE_COLOR") != "" {
		return ColorAlways
	}
	return ColorAuto
}

// IsTTY returns true if output should be formatted for a terminal.
func (o *OutputConfig) IsTTY() bool {
	if o == nil {
		return false
	} else if o.ColorMode == ColorAlways {
		return true
	} else if o.ColorMode == ColorNever {
		return false
	} else if f, ok := o.Writer.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (o *OutputConfig) ColorsEnabled() bool {
	return o.IsTTY()
}
