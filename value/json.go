package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Parse decodes JSON text into a Value, keeping object keys in document order.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decode(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}

	return v, nil
}

// Of converts any JSON-marshalable Go value. Struct fields keep their
// declaration order, map keys come out sorted as encoding/json sorts them.
func Of(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}

		return *t, nil
	}

	data, err := json.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("marshaling %T: %w", x, err)
	}

	return Parse(data)
}

func decode(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}

			for dec.More() {
				item, err := decode(dec)
				if err != nil {
					return Value{}, err
				}

				items = append(items, item)
			}

			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}

			return Array(items...), nil
		case '{':
			fields := []Field{}

			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}

				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T, not a string", keyTok)
				}

				val, err := decode(dec)
				if err != nil {
					return Value{}, err
				}

				fields = append(fields, Field{Key: key, Value: val})
			}

			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}

			return Object(fields...), nil
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// Literal returns the compact JSON text of v.
func (v Value) Literal() string {
	var buf bytes.Buffer
	v.appendJSON(&buf)

	return buf.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	v.appendJSON(&buf)

	return buf.Bytes(), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

func (v Value) appendJSON(buf *bytes.Buffer) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		buf.WriteString(Quote(v.s))
	case KindArray:
		buf.WriteByte('[')

		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}

			item.appendJSON(buf)
		}

		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')

		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}

			buf.WriteString(Quote(f.Key))
			buf.WriteByte(':')
			f.Value.appendJSON(buf)
		}

		buf.WriteByte('}')
	}
}

// Quote returns s as a JSON string literal. HTML characters are left as they are.
func Quote(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// MarshalIndent encodes x as indented JSON without HTML escaping and without
// a trailing newline.
func MarshalIndent(x any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(x); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
