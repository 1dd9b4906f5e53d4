// Package std records which Python module names belong to the
// standard library. Membership is purely lexical data: it is not
// derived from an installed interpreter, so modules missing from the
// list classify as third-party. That is a documented limitation, not
// something to silently fix here; extend the list through
// configuration instead of editing it.
package std

import "strings"

// StandardModules is the base allow-list of standard-library module
// names, keyed by top-level module.
var StandardModules = map[string]bool{
	"os":          true,
	"sys":         true,
	"time":        true,
	"datetime":    true,
	"collections": true,
	"random":      true,
	"math":        true,
	"json":        true,
	"re":          true,
	"pathlib":     true,
	"typing":      true,
}

// IsStandardModule reports whether the root of the given module path
// (the part before the first dot) is on the standard-library list.
func IsStandardModule(module string) bool {
	root, _, _ := strings.Cut(module, ".")
	return StandardModules[root]
}
