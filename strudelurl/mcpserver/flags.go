package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

// Parse is the entry point for `strudelurl mcp`.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("mcp", pflag.ContinueOnError)
	var baseURL string
	fs.StringVar(&baseURL, "base-url", patternurl.BaseURL, "REPL address placed before the fragment")
	fs.Usage = printUsage

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	} else if len(fs.Args()) > 0 {
		printUsage()
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol, so logs go to stderr
	err := New(baseURL, log.New(os.Stderr, "", log.LstdFlags)).Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printUsage() {
	_, _ = fmt.Fprint(os.Stderr, `Usage: strudelurl mcp [options]

Serve encode_pattern, decode_pattern and diff_patterns as MCP tools over stdio.
Logs are written to stderr.

Example agent configuration:
  {"command": "strudelurl", "args": ["mcp"]}

Options:
  --base-url URL      REPL address for encoded links (default: https://strudel.cc/)
`)
}
