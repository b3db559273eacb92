package importscan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// importKeyword finds `import` at the start of a line. The separator and the
// token are scanned by hand because RE2 `\s` is ASCII-only.
var importKeyword = regexp.MustCompile(`(?m)^import`)

// isSpace reports Unicode whitespace, including the information separators
// U+001C..U+001F that unicode.IsSpace leaves out.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// ExtractImports returns every token following `import` and at least one
// whitespace character at the start of a line, in order of appearance.
// The separator may span line breaks. Duplicates within content are kept.
func ExtractImports(content string) []string {
	var imports []string

	consumed := 0

	for _, loc := range importKeyword.FindAllStringIndex(content, -1) {
		if loc[0] < consumed {
			continue
		}

		token, end, ok := tokenAfter(content, loc[1])
		if !ok {
			continue
		}

		imports = append(imports, token)
		consumed = end
	}

	return imports
}

// tokenAfter skips a non-empty whitespace run starting at pos and returns the
// following run of non-whitespace runes and the offset just past it.
func tokenAfter(content string, pos int) (string, int, bool) {
	start := pos

	for start < len(content) {
		r, size := utf8.DecodeRuneInString(content[start:])
		if !isSpace(r) {
			break
		}

		start += size
	}

	if start == pos || start == len(content) {
		return "", 0, false
	}

	end := start + strings.IndexFunc(content[start:], isSpace)
	if end < start {
		end = len(content)
	}

	return content[start:end], end, true
}
