package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ErrParse is wrapped by every error Parse returns.
var ErrParse = errors.New("csv parse error")

// ParseError locates a parse failure.
type ParseError struct {
	Line   int
	Column string // empty for row-level errors
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// CastFunc converts the raw text of a cell in the named column.
type CastFunc func(column, raw string) (any, error)

// Schema describes the expected layout of a CSV document.
type Schema struct {
	// Columns names the fields of each row, in order.
	Columns []string
	// FromLine is the 1-based line on which data rows start. Zero means 1.
	FromLine int
	// Cast converts cells. Without it every cell stays a string.
	Cast CastFunc
}

// Record is one parsed row. Values are kept in column order.
type Record struct {
	columns []string
	values  []any
}

// Get returns the value of a column, or nil if the schema has no such column.
func (r Record) Get(column string) any {
	for i, c := range r.columns {
		if c == column {
			return r.values[i]
		}
	}

	return nil
}

// String returns a column's value if it is a string.
func (r Record) String(column string) string {
	s, _ := r.Get(column).(string)

	return s
}

// Strings returns a column's value if it is a string slice.
func (r Record) Strings(column string) []string {
	s, _ := r.Get(column).([]string)

	return s
}

// Number returns a column's value if it is a *float64.
func (r Record) Number(column string) *float64 {
	n, _ := r.Get(column).(*float64)

	return n
}

// Len returns the number of columns in the record.
func (r Record) Len() int {
	return len(r.values)
}

// DecodeLatin1 converts ISO-8859-1 bytes to a UTF-8 string.
func DecodeLatin1(data []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding latin-1: %w", err)
	}

	return string(out), nil
}

// Parse reads all data rows of text according to schema.
func Parse(text string, schema Schema) ([]Record, error) {
	fromLine := max(schema.FromLine, 1)

	reader := csv.NewReader(strings.NewReader(text))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // header rows may differ; data rows are checked below

	records := []Record{}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}

			return nil, &ParseError{Err: err}
		}

		line, _ := reader.FieldPos(0)
		if line < fromLine {
			continue
		}

		if len(row) != len(schema.Columns) {
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, got %d", len(schema.Columns), len(row)),
			}
		}

		rec := Record{columns: schema.Columns, values: make([]any, len(row))}

		for i, raw := range row {
			if schema.Cast == nil {
				rec.values[i] = raw

				continue
			}

			v, err := schema.Cast(schema.Columns[i], raw)
			if err != nil {
				return nil, &ParseError{Line: line, Column: schema.Columns[i], Err: err}
			}

			rec.values[i] = v
		}

		records = append(records, rec)
	}

	return records, nil
}
