package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"

	"github.com/go-appsec/strudel-tools/strudelurl/cliutil"
	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
	"github.com/go-appsec/strudel-tools/strudelurl/util"
)

const defaultURLWidth = 60

// Parse is the entry point for `strudelurl list [dir]`.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	var exts []string
	var baseURL string
	var width int

	fs.StringSliceVar(&exts, "ext", DefaultExtensions, "pattern file extensions to include")
	fs.StringVar(&baseURL, "base-url", patternurl.BaseURL, "REPL address placed before the fragment")
	fs.IntVar(&width, "width", defaultURLWidth, "truncate links to this many characters (0 for full links)")
	fs.Usage = printUsage

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	dir := "."
	switch remaining := fs.Args(); len(remaining) {
	case 0:
	case 1:
		dir = remaining[0]
	default:
		printUsage()
		return errors.New("at most one directory may be given")
	}

	entries, err := Scan(dir, exts, baseURL)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cliutil.NoResults(nil, "No pattern files found.")
		return nil
	}
	printEntryTable(entries, width)
	return nil
}

func printEntryTable(entries []Entry, width int) {
	t := cliutil.NewTable(nil)
	t.AppendHeader(table.Row{"Name", "Lines", "Size", "URL"})
	t.SetColumnConfigs([]table.ColumnConfig{cliutil.MutedColumn(4)})

	for _, e := range entries {
		link := e.URL
		if width > 0 {
			link = util.TruncateString(link, width)
		}
		t.AppendRow(table.Row{e.Name, e.Lines, e.Size, link})
	}
	t.Render()
	cliutil.Summary(nil, len(entries), "pattern", "patterns")

	if width > 0 {
		cliutil.HintCommand(nil, "To print full links", "strudelurl list --width 0")
	}
}

func printUsage() {
	_, _ = fmt.Fprint(os.Stderr, `Usage: strudelurl list [options] [dir]

List pattern files in a directory along with their shareable strudel.cc links.
Only files directly inside dir are considered (default: current directory).

Examples:
  strudelurl list patterns/
  strudelurl list --width 0 patterns/      # full links
  strudelurl list --ext .js,.mjs .

Options:
  --ext LIST          file extensions to include (default: .js,.strudel)
  --base-url URL      REPL address (default: https://strudel.cc/)
  --width N           truncate links to N characters, 0 for full links (default: 60)
`)
}
