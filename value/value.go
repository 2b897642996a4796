package value

import (
	"encoding/json"
	"math"
)

// Value is a JSON-like value: null, bool, number, string, array or object.
// Objects keep their keys in insertion order. The zero Value is null.
type Value struct {
	kind   Kind
	b      bool
	s      string // string payload, or the literal text of a number
	items  []Value
	fields []Field
}

// Field is a single key/value pair of an object.
type Field struct {
	Key   string
	Value Value
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps a JSON number literal as-is, so rendering never reformats it.
func Number(n json.Number) Value { return Value{kind: KindNumber, s: n.String()} }

// Float converts f the way JSON encoders do. NaN and infinities have no JSON
// form and become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}

	b, err := json.Marshal(f)
	if err != nil {
		return Null()
	}

	return Value{kind: KindNumber, s: string(b)}
}

func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

func Object(fields ...Field) Value { return Value{kind: KindObject, fields: fields} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsScalar() bool { return v.kind.IsScalar() }

// Items returns the elements of an array, nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}

	return v.items
}

// Fields returns the properties of an object in insertion order, nil for any other kind.
func (v Value) Fields() []Field {
	if v.kind != KindObject {
		return nil
	}

	return v.fields
}

// Len returns the number of elements of an array or properties of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Get looks up a property of an object. Duplicate keys resolve to the last one.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	for i := len(v.fields) - 1; i >= 0; i-- {
		if v.fields[i].Key == key {
			return v.fields[i].Value, true
		}
	}

	return Value{}, false
}

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

func (v Value) AsNumber() (json.Number, bool) { return json.Number(v.s), v.kind == KindNumber }

// Equal reports deep equality. Numbers compare by value, so 1 and 1.0 are equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindNumber:
		if v.s == o.s {
			return true
		}

		a, errA := json.Number(v.s).Float64()
		b, errB := json.Number(o.s).Float64()

		return errA == nil && errB == nil && a == b
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}

		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(v.fields) != len(o.fields) {
			return false
		}

		for i := range v.fields {
			if v.fields[i].Key != o.fields[i].Key || !v.fields[i].Value.Equal(o.fields[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
