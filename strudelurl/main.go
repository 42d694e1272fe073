package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/go-appsec/strudel-tools/strudelurl/catalog"
	"github.com/go-appsec/strudel-tools/strudelurl/cliutil"
	"github.com/go-appsec/strudel-tools/strudelurl/mcpserver"
	"github.com/go-appsec/strudel-tools/strudelurl/patterndiff"
	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

var commands = []string{"encode", "decode", "diff", "list", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("strudelurl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(stderr)
	var color string
	fs.StringVar(&color, "color", "", "color output: auto, always, never")
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return fail(stderr, err)
	}
	if color != "" {
		mode, err := cliutil.ParseColorMode(color)
		if err != nil {
			return fail(stderr, err)
		}
		cliutil.Output.ColorMode = mode
	}

	args = fs.Args()
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "encode":
		err = patternurl.ParseEncode(args[1:])
	case "decode":
		err = patternurl.ParseDecode(args[1:])
	case "diff":
		err = patterndiff.Parse(args[1:])
	case "list":
		err = catalog.Parse(args[1:])
	case "mcp":
		err = mcpserver.Parse(args[1:])
	case "version":
		_, _ = fmt.Fprintf(cliutil.Output.Writer, "strudelurl %s\n", mcpserver.Version)
	case "help", "--help", "-h":
		printUsage(stderr)
	default:
		printUsage(stderr)
		err = cliutil.UnknownCommandError(args[0], commands)
	}
	if err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "%s %v\n", cliutil.Error("Error:"), err)
	return 1
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `Usage: strudelurl [--color MODE] <command> [options]

Convert Strudel pattern code to and from shareable strudel.cc links.
Runs locally, nothing is fetched or stored.

Commands:
  encode     Encode code into a link             strudelurl encode 'note("c e g")'
  decode     Decode a link or fragment           strudelurl decode 'https://strudel.cc/#...'
  diff       Compare the code behind two links   strudelurl diff <url-a> <url-b>
  list       Show links for pattern files        strudelurl list patterns/
  mcp        Serve the tools to agents over stdio
  version    Print the version

Global options:
  --color MODE   auto, always or never (default: auto; honors NO_COLOR and FORCE_COLOR)

Use "strudelurl <command> --help" for more information.
`)
}
