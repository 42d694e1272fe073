package patterndiff

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/go-appsec/strudel-tools/strudelurl/cliutil"
)

// Parse is the entry point for `strudelurl diff <url-a> <url-b>`.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("diff", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	var context int
	fs.IntVar(&context, "context", DefaultContext, "lines of context around each change")
	fs.Usage = printUsage

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 2 {
		printUsage()
		return errors.New("two links required")
	}

	res, err := Compare(remaining[0], remaining[1], context)
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}

func printResult(res *Result) {
	w := cliutil.Output.Writer
	if res.Same() {
		cliutil.Hint(w, "Patterns are identical.")
		return
	} else if res.Diff == "" {
		_, _ = fmt.Fprintln(w, cliutil.Warning("Patterns differ only in trailing whitespace."))
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(res.Diff, "\n"), "\n") {
		_, _ = fmt.Fprintln(w, cliutil.FormatDiffLine(line))
	}
	_, _ = fmt.Fprintf(w, "\n%s %s\n",
		cliutil.Success(fmt.Sprintf("+%d", res.Added)),
		cliutil.Error(fmt.Sprintf("-%d", res.Removed)))
}

func printUsage() {
	_, _ = fmt.Fprint(os.Stderr, `Usage: strudelurl diff [options] <url-a> <url-b>

Decode two strudel.cc links (or bare fragments) and show how their code differs.

Examples:
  strudelurl diff 'https://strudel.cc/#cygiYmQqNCIp' 'https://strudel.cc/#cygiYmQqMiIp'

Options:
  --context N   lines of context around each change (default: 3)
`)
}
