package patterndiff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

const DefaultContext = 3

// Result holds the decoded patterns and their unified diff.
type Result struct {
	A, B    string
	Diff    string
	Added   int
	Removed int
}

// Same reports whether both links carry identical code.
func (r *Result) Same() bool {
	return r.A == r.B
}

// Compare decodes two links (or bare fragments) and diffs the code they carry.
func Compare(linkA, linkB string, context int) (*Result, error) {
	codeA, err := patternurl.Decode(linkA)
	if err != nil {
		return nil, fmt.Errorf("pattern a: %w", err)
	}
	codeB, err := patternurl.Decode(linkB)
	if err != nil {
		return nil, fmt.Errorf("pattern b: %w", err)
	}
	return CompareCode(codeA, codeB, context)
}

// CompareCode diffs two already-decoded patterns.
func CompareCode(codeA, codeB string, context int) (*Result, error) {
	if context < 0 {
		context = DefaultContext
	}

	res := &Result{A: codeA, B: codeB}
	if res.Same() {
		return res, nil
	}

	diff := difflib.UnifiedDiff{
		A:        splitLines(codeA),
		B:        splitLines(codeB),
		FromFile: "a",
		ToFile:   "b",
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	res.Diff = text

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			res.Added++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			res.Removed++
		}
	}
	return res, nil
}

// splitLines keeps line endings and always terminates the last line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}
