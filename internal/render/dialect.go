package render

import (
	"strings"

	"countrycodes-generator/value"
)

// Dialect is the per-output-format part of rendering.
type Dialect interface {
	// Leaf returns the source text of a scalar value.
	Leaf(v value.Value) string
	// Annotate returns a comment line to emit above a property holding v.
	Annotate(v value.Value) (string, bool)
}

var (
	// Declaration renders TypeScript type-literal syntax.
	Declaration Dialect = declarationDialect{}
	// Literal renders executable JavaScript values with JSDoc type hints.
	Literal Dialect = literalDialect{}
)

type declarationDialect struct{}

func (declarationDialect) Leaf(v value.Value) string { return v.Literal() }

func (declarationDialect) Annotate(value.Value) (string, bool) { return "", false }

type literalDialect struct{}

func (literalDialect) Leaf(v value.Value) string { return v.Literal() }

// Annotate hints scalars with their own literal and scalar-only arrays with
// the union of their element literals. Element types are not checked for
// homogeneity. Objects and arrays holding containers get no hint.
func (literalDialect) Annotate(v value.Value) (string, bool) {
	switch {
	case v.Kind() == value.KindArray && allScalars(v.Items()):
		parts := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			parts = append(parts, item.Literal())
		}

		return "/** @type {[" + strings.Join(parts, " | ") + "]} */", true

	case v.IsScalar():
		return "/** @type {" + v.Literal() + "} */", true

	default:
		return "", false
	}
}

func allScalars(items []value.Value) bool {
	for _, item := range items {
		if !item.IsScalar() {
			return false
		}
	}

	return true
}
