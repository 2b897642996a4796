package render

import (
	"strings"

	"countrycodes-generator/value"
)

// RenderDeclaration renders v in the type-declaration dialect.
func RenderDeclaration(v value.Value) string {
	return Render(v, Declaration)
}

// RenderValue renders v in the executable-value dialect.
func RenderValue(v value.Value) string {
	return Render(v, Literal)
}

// Render renders v with the given dialect, starting at depth 0.
//
// v is expected to be an array or an object. Any other value renders as
// "null\n", which keeps degenerate inputs from failing generation.
func Render(v value.Value, d Dialect) string {
	r := &renderer{dialect: d}
	r.node(v)

	return r.out.String()
}

type renderer struct {
	dialect Dialect
	indent  Indent
	out     strings.Builder
}

// node renders a container. The opening bracket is written without
// indentation, the closing one at the current depth.
func (r *renderer) node(v value.Value) {
	switch v.Kind() {
	case value.KindArray:
		if v.Len() == 0 {
			r.out.WriteString("[]")

			return
		}

		r.out.WriteString("[\n")
		r.indent.Increase()

		for _, item := range v.Items() {
			r.out.WriteString(r.indent.String())
			r.value(item)
			r.out.WriteString(",\n")
		}

		r.indent.Decrease()
		r.out.WriteString(r.indent.String())
		r.out.WriteString("]")

	case value.KindObject:
		r.out.WriteString("{\n")
		r.indent.Increase()

		for _, f := range v.Fields() {
			r.property(f)
		}

		r.indent.Decrease()
		r.out.WriteString(r.indent.String())
		r.out.WriteString("}")

	default:
		r.out.WriteString(r.indent.String())
		r.out.WriteString("null\n")
	}
}

func (r *renderer) value(v value.Value) {
	if v.Kind().IsContainer() {
		r.node(v)

		return
	}

	r.out.WriteString(r.dialect.Leaf(v))
}

func (r *renderer) property(f value.Field) {
	if hint, ok := r.dialect.Annotate(f.Value); ok {
		r.out.WriteString(r.indent.String())
		r.out.WriteString(hint)
		r.out.WriteString("\n")
	}

	r.out.WriteString(r.indent.String())
	r.out.WriteString(value.Quote(f.Key))
	r.out.WriteString(": ")
	r.value(f.Value)
	r.out.WriteString(",\n")
}
