// Package render turns JSON-like values into indented JavaScript source text.
//
// A single recursive traversal walks arrays and objects; a Dialect decides
// how leaves are spelled and whether a property gets a type-hint comment.
//
// Dialects:
//   - Declaration: TypeScript type-literal syntax for .d.ts files
//   - Literal: executable value syntax with JSDoc @type hints for .js files
//
// Output conventions:
//   - Four spaces per nesting level
//   - Every array element and object property ends with a comma, the last one included
//   - Empty arrays render as "[]" on one line, empty objects as "{\n}"
//   - No trailing comma or newline after the outermost closing bracket
package render
