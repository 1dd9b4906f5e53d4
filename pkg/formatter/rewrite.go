package formatter

import "strings"

// SplitLines splits content into lines without producing a phantom
// empty line after a trailing newline.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Rewrite replaces every import block in content with its sorted form
// and normalizes blank-line spacing around and inside each block.
// Non-import content keeps its original relative order. Applying
// Rewrite to its own output is a no-op.
func (c *Classifier) Rewrite(content string) string {
	lines := SplitLines(content)
	blocks := FindImportBlocks(lines)
	if len(blocks) == 0 {
		return content
	}

	var b strings.Builder
	lastEnd := 0

	for _, block := range blocks {
		preceding := strings.TrimRight(strings.Join(lines[lastEnd:block.StartLine], "\n"), " \t\r\n")
		if preceding != "" {
			b.WriteString(preceding)
			b.WriteString("\n\n")
		}

		var prev ImportCategory
		for i, imp := range c.GroupAndSort(block.Imports) {
			if i > 0 && imp.Category != prev {
				b.WriteString("\n")
			}
			prev = imp.Category
			b.WriteString(imp.Line)
			b.WriteString("\n")
		}

		// exactly one blank separator line after the block
		b.WriteString("\n\n")

		lastEnd = block.EndLine + 1
	}

	if lastEnd < len(lines) {
		remaining := strings.TrimLeft(strings.Join(lines[lastEnd:], "\n"), " \t\r\n")
		if remaining != "" {
			b.WriteString(remaining)
		}
	}

	return b.String()
}
