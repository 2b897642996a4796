// Package csvtable parses CSV downloads against a fixed column schema.
//
// The schema names every column positionally, says on which line data
// starts (header rows before it are skipped) and may cast each raw cell into
// a typed value. A row whose field count differs from the schema, or a cell
// the cast rejects, fails the whole parse with ErrParse.
package csvtable
