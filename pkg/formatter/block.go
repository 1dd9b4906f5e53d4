package formatter

import (
	"regexp"
	"strings"
)

// importLineRe matches top-level-looking import statements:
// "import X" or "from X import Y". This is a line-shape matcher, not a
// parser; parenthesized, semicolon-separated, and nested imports are
// out of scope.
var importLineRe = regexp.MustCompile(`^(from\s+\S+\s+import\s+\S+|import\s+\S+)`)

// IsImportLine reports whether a trimmed line looks like an import
// statement.
func IsImportLine(trimmed string) bool {
	return importLineRe.MatchString(trimmed)
}

// FindImportBlocks scans lines in file order and groups consecutive
// import statements into blocks. Blank lines inside an open block do
// not close it; any other line does. A file with no imports yields nil.
func FindImportBlocks(lines []string) []ImportBlock {
	var blocks []ImportBlock
	var current *ImportBlock

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case IsImportLine(trimmed):
			if current == nil {
				current = &ImportBlock{StartLine: i}
			}
			current.Imports = append(current.Imports, trimmed)
			current.EndLine = i
		case trimmed == "" && current != nil:
			// absorbed into the span, not recorded
		default:
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
		}
	}

	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}
