package formatter

// ImportBlock is a contiguous run of import statements in a file.
// StartLine and EndLine are 0-based indices into the file's lines;
// blank lines between two imports of the same run are absorbed into
// the span but not recorded in Imports.
type ImportBlock struct {
	Imports   []string // trimmed import lines, original text preserved
	StartLine int
	EndLine   int
}

// ImportCategory orders import groups within a block. Lower values
// sort first and the order is fixed, not configurable.
type ImportCategory int

const (
	Future ImportCategory = iota
	StandardLib
	ThirdParty
	LocalLib
)

// ClassifiedImport pairs an import line with its category.
type ClassifiedImport struct {
	Category ImportCategory
	Line     string
}
