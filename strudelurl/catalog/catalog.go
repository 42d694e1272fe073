package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-analyze/bulk"

	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

// DefaultExtensions are the file types treated as pattern sources.
var DefaultExtensions = []string{".js", ".strudel"}

// Entry describes one pattern file and its shareable link.
type Entry struct {
	Name  string
	Path  string
	Lines int
	Size  int
	URL   string
}

// Scan reads every pattern file directly inside dir and encodes it into a link.
// Entries are returned in file name order.
func Scan(dir string, exts []string, baseURL string) ([]Entry, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	if baseURL == "" {
		baseURL = patternurl.BaseURL
	}
	extSet := bulk.SliceToSet(normalizeExtensions(exts))

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pattern directory: %w", err)
	}
	dirEntries = bulk.SliceFilterInPlace(func(e os.DirEntry) bool {
		if !e.Type().IsRegular() {
			return false
		}
		_, ok := extSet[strings.ToLower(filepath.Ext(e.Name()))]
		return ok
	}, dirEntries)

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		code := string(data)
		entries = append(entries, Entry{
			Name:  strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path:  path,
			Lines: countLines(code),
			Size:  len(data),
			URL:   patternurl.EncodeWithBase(baseURL, code),
		})
	}
	return entries, nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		} else if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
