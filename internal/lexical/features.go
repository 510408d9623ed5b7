// Package lexical derives primitive counts and booleans from raw Java
// source text. Extraction happens once per analysis call; every rule and
// metric reads from the resulting Features value instead of re-scanning.
//
// The counting is deliberately lexical, not syntactic. Constructs are
// counted per physical line, parameters from the first '(' to the last ')'
// on a line, and so on. These heuristics under- and over-count in known
// ways (multi-statement lines, nested parens) and the downstream scoring
// thresholds are tuned against exactly this counting, so it must not be
// replaced with a tokenizer.
package lexical

import "strings"

// Features is an immutable snapshot of lexical facts about one source text.
type Features struct {
	Raw   string
	Lower string
	Lines []string

	NumClasses    int
	NumInterfaces int
	NumMethods    int
	NumStatic     int

	NumIf     int
	NumFor    int
	NumWhile  int
	NumSwitch int

	NumParameters int

	TotalLines    int
	NonEmptyLines int
	CommentLines  int
}

// Extract scans the source once and returns its features. It is total:
// any string input, including empty, yields a valid (possibly zeroed)
// Features value.
func Extract(source string) *Features {
	lines := strings.Split(source, "\n")

	f := &Features{
		Raw:        source,
		Lower:      strings.ToLower(source),
		Lines:      lines,
		TotalLines: len(lines),

		NumClasses:    strings.Count(source, "class "),
		NumInterfaces: strings.Count(source, "interface "),
		NumStatic:     strings.Count(source, "static "),
	}
	f.NumMethods = strings.Count(source, "public ") +
		strings.Count(source, "private ") +
		strings.Count(source, "protected ")

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			f.NonEmptyLines++
		}
		if strings.Contains(line, "//") || strings.Contains(line, "/*") {
			f.CommentLines++
		}
		if strings.Contains(line, " if ") || strings.Contains(line, " if(") || strings.Contains(line, "if(") {
			f.NumIf++
		}
		if strings.Contains(line, " for ") || strings.Contains(line, " for(") || strings.Contains(line, "for(") {
			f.NumFor++
		}
		if strings.Contains(line, " while ") || strings.Contains(line, " while(") {
			f.NumWhile++
		}
		if strings.Contains(line, "switch") {
			f.NumSwitch++
		}
		f.NumParameters += countLineParameters(line)
	}

	return f
}

// countLineParameters counts comma-separated segments between the first
// '(' and the last ')' on a line. Nested parens and multiple calls per
// line are conflated on purpose.
func countLineParameters(line string) int {
	start := strings.Index(line, "(")
	end := strings.LastIndex(line, ")")
	if start == -1 || end == -1 || start >= end {
		return 0
	}
	params := line[start : end+1]
	if params == "()" {
		return 0
	}
	return strings.Count(params, ",") + 1
}

// Has reports whether the raw text contains sub (case-sensitive).
func (f *Features) Has(sub string) bool {
	return strings.Contains(f.Raw, sub)
}

// HasLower reports whether the lowercased text contains sub.
func (f *Features) HasLower(sub string) bool {
	return strings.Contains(f.Lower, sub)
}

// Count returns the number of non-overlapping occurrences of sub in the
// raw text.
func (f *Features) Count(sub string) int {
	return strings.Count(f.Raw, sub)
}

// CountLower returns occurrences of sub in the lowercased text.
func (f *Features) CountLower(sub string) int {
	return strings.Count(f.Lower, sub)
}
