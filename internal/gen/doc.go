// Package gen emits generated JavaScript modules for dataset values.
//
// Every module is a triple of files sharing one stem:
//   - <stem>.json: the data, 2-space indented
//   - <stem>.d.ts: an ambient declaration of the exported constant
//   - <stem>.js: a CommonJS module exporting the constant
//
// File bodies are assembled with text/template around the source renderer,
// so both code files describe exactly the same value.
package gen
