package scanner

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/archlint/archlint/internal/core/domain"
)

// Static import forms recognised by the extractor. Each pattern names
// another module by a quoted specifier; anything fancier (computed
// specifiers, template strings) is invisible to module-level analysis.
// The from-pattern's clause class ([\s\w{},*$]) spans newlines so that
// statements formatted across several lines still match.
var (
	reFrom    = regexp.MustCompile(`\b(import|export)\b[\s\w{},*$]*?\bfrom\s*["']([^"']+)["']`)
	reBare    = regexp.MustCompile(`\bimport\s*["']([^"']+)["']`)
	reRequire = regexp.MustCompile(`\brequire\s*\(\s*["']([^"']+)["']\s*\)`)
	reDynamic = regexp.MustCompile(`\bimport\s*\(\s*["']([^"']+)["']\s*\)`)
)

// extractImports runs every pattern over the comment-stripped source as
// a whole and returns the raw import specifiers in file order, each
// carrying the 1-based line its specifier sits on. A specifier is
// reported once per line even when two patterns overlap.
func extractImports(src []byte) []domain.ImportRef {
	text := stripComments(string(src))

	// Line-start offsets map a match offset back to its line number.
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	lineAt := func(off int) int {
		return sort.SearchInts(starts, off+1)
	}

	type match struct {
		off int
		ref domain.ImportRef
	}
	var matches []match
	seen := map[string]bool{}
	add := func(off int, spec string, kind domain.ImportKind) {
		if spec == "" {
			return
		}
		line := lineAt(off)
		key := strconv.Itoa(line) + "\x00" + spec
		if seen[key] {
			return
		}
		seen[key] = true
		matches = append(matches, match{off, domain.ImportRef{Specifier: spec, Line: line, Kind: kind}})
	}

	for _, m := range reFrom.FindAllStringSubmatchIndex(text, -1) {
		kind := domain.ImportStatic
		if text[m[2]:m[3]] == "export" {
			kind = domain.ImportReexport
		}
		add(m[4], text[m[4]:m[5]], kind)
	}
	for _, m := range reDynamic.FindAllStringSubmatchIndex(text, -1) {
		add(m[2], text[m[2]:m[3]], domain.ImportDynamic)
	}
	for _, m := range reRequire.FindAllStringSubmatchIndex(text, -1) {
		add(m[2], text[m[2]:m[3]], domain.ImportRequire)
	}
	for _, m := range reBare.FindAllStringSubmatchIndex(text, -1) {
		add(m[2], text[m[2]:m[3]], domain.ImportStatic)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].off < matches[j].off })

	refs := make([]domain.ImportRef, len(matches))
	for i, m := range matches {
		refs[i] = m.ref
	}
	return refs
}

// stripComments removes // and /* */ comment content, keeping every
// newline so line numbers survive the stripping. Quoted strings are not
// parsed; a comment marker inside a string is a rare enough false
// positive for import statements to accept.
func stripComments(src string) string {
	var out strings.Builder
	out.Grow(len(src))
	i := 0
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case strings.HasPrefix(src[i:], "/*"):
			i += 2
			for i < len(src) && !strings.HasPrefix(src[i:], "*/") {
				if src[i] == '\n' {
					out.WriteByte('\n')
				}
				i++
			}
			if i < len(src) {
				i += 2
			}
		default:
			out.WriteByte(src[i])
			i++
		}
	}
	return out.String()
}
