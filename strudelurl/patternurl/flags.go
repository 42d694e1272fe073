package patternurl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/go-appsec/strudel-tools/strudelurl/cliutil"
)

// ParseEncode is the entry point for `strudelurl encode <code>`.
func ParseEncode(args []string) error {
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	var baseURL string
	fs.StringVar(&baseURL, "base-url", BaseURL, "REPL address placed before the fragment")
	fs.Usage = printEncodeUsage

	return parseAndRun(fs, args, printEncodeUsage, func(s string) (string, error) {
		return EncodeWithBase(baseURL, s), nil
	})
}

// ParseDecode is the entry point for `strudelurl decode <url-or-fragment>`.
func ParseDecode(args []string) error {
	fs := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.Usage = printDecodeUsage

	return parseAndRun(fs, args, printDecodeUsage, Decode)
}

func printEncodeUsage() {
	_, _ = fmt.Fprint(os.Stderr, `Usage: strudelurl encode [options] <code | -f PATH>

Encode pattern code into a shareable strudel.cc link.
The code is base64 encoded and carried in the URL fragment.

Examples:
  strudelurl encode 'note("c e g")'         # https://strudel.cc/#bm90ZSgiYyBlIGciKQ%3D%3D
  strudelurl encode -f acid-bass.js         # encode file contents
  cat pattern.js | strudelurl encode -f -   # encode stdin
  strudelurl encode -- '-1'                 # code starting with "-" goes after --

Options:
  -f, --file PATH     read code from file (- for stdin)
  --base-url URL      REPL address (default: https://strudel.cc/)
  --raw               output without trailing newline
`)
}

func printDecodeUsage() {
	_, _ = fmt.Fprint(os.Stderr, `Usage: strudelurl decode [options] <url-or-fragment | -f PATH>

Decode a strudel.cc link (or just its fragment) back into pattern code.

Examples:
  strudelurl decode 'https://strudel.cc/#bm90ZSgiYyBlIGciKQ%3D%3D'
  strudelurl decode 'bm90ZSgiYyBlIGciKQ%3D%3D'
  strudelurl decode -f link.txt

Options:
  -f, --file PATH     read the link from file (- for stdin)
  --raw               output without trailing newline
`)
}

func parseAndRun(fs *pflag.FlagSet, args []string, usage func(), fn func(string) (string, error)) error {
	var raw bool
	var file string

	fs.StringVarP(&file, "file", "f", "", "read input from file (- for stdin)")
	fs.BoolVar(&raw, "raw", false, "output without trailing newline")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	input, err := ReadInput(file, fs.Args())
	if err != nil {
		usage()
		return err
	}

	result, err := fn(input)
	if err != nil {
		return err
	}

	if raw {
		_, _ = fmt.Fprint(cliutil.Output.Writer, result)
	} else {
		_, _ = fmt.Fprintln(cliutil.Output.Writer, result)
	}
	return nil
}

// ReadInput resolves command input from a file path ("-" for stdin) or the
// remaining positional arguments joined by spaces.
func ReadInput(file string, remaining []string) (string, error) {
	if file != "" {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	} else if len(remaining) > 0 {
		return strings.Join(remaining, " "), nil
	}
	return "", errors.New("input required: provide string argument or use -f")
}
