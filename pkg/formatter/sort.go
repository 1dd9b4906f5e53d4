package formatter

import (
	"sort"
	"strings"

	"github.com/siyuan-infoblox/py-imports-group/pkg/std"
)

const futureModule = "__future__"

// Classifier assigns import lines to categories. Standard-library
// membership is lexical data, not resolved against an installed
// interpreter, so modules missing from the list classify as
// third-party.
type Classifier struct {
	extraStd map[string]bool
}

// NewClassifier returns a classifier that treats the given module
// roots as standard library in addition to the base list.
func NewClassifier(extraStdModules []string) *Classifier {
	extra := make(map[string]bool, len(extraStdModules))
	for _, name := range extraStdModules {
		extra[name] = true
	}
	return &Classifier{extraStd: extra}
}

// Categorize assigns a category to one import line. First match wins;
// a line that fits no rule lands in ThirdParty rather than failing.
func (c *Classifier) Categorize(line string) ImportCategory {
	if strings.Contains(line, futureModule) {
		return Future
	}

	// "from ." also covers "from .."
	if strings.HasPrefix(line, "from .") {
		return LocalLib
	}

	root := moduleRoot(line)
	if std.IsStandardModule(root) || c.extraStd[root] {
		return StandardLib
	}
	return ThirdParty
}

// moduleRoot extracts the module token of an import line ("X" in both
// "import X" and "from X import Y") and returns the portion before the
// first submodule separator.
func moduleRoot(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	root, _, _ := strings.Cut(fields[1], ".")
	return root
}

// GroupAndSort classifies every line of a block and orders them by
// category, then keyword ("import" lines before "from" lines), then
// case-insensitively by the full line text. The set of lines is
// preserved exactly; only the order changes.
func (c *Classifier) GroupAndSort(imports []string) []ClassifiedImport {
	classified := make([]ClassifiedImport, len(imports))
	for i, line := range imports {
		classified[i] = ClassifiedImport{Category: c.Categorize(line), Line: line}
	}

	sort.SliceStable(classified, func(i, j int) bool {
		a, b := classified[i], classified[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		aFrom := strings.HasPrefix(a.Line, "from")
		bFrom := strings.HasPrefix(b.Line, "from")
		if aFrom != bFrom {
			return bFrom
		}
		return strings.ToLower(a.Line) < strings.ToLower(b.Line)
	})

	return classified
}
