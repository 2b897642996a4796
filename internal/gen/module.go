package gen

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"countrycodes-generator/internal/render"
	"countrycodes-generator/value"
)

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "countrycodes-FR.d.ts").
	Filename string
	// Content is the file body.
	Content []byte
}

// jsonIndent is the indentation of generated .json files.
const jsonIndent = "  "

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// moduleData is the template input for the code files.
type moduleData struct {
	Export string
	Body   string
}

var declarationTemplate = template.Must(template.New("declaration").Parse(
	`export declare const {{.Export}}: {{.Body}};
`))

var moduleTemplate = template.Must(template.New("module").Parse(
	`const {{.Export}} = {{.Body}};

exports.{{.Export}} = {{.Export}};
`))

// BuildModule renders the .json, .d.ts and .js files for v without touching
// the file system. exportName must be a valid JavaScript identifier.
func BuildModule(stem, exportName string, v value.Value) ([]GeneratedFile, error) {
	if stem == "" {
		return nil, fmt.Errorf("%w: empty file stem", ErrOutput)
	}

	if !identifierPattern.MatchString(exportName) {
		return nil, fmt.Errorf("%w: %q is not a valid export name", ErrOutput, exportName)
	}

	data, err := value.MarshalIndent(v, jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encoding %s.json: %w", stem, err)
	}

	declaration, err := execute(declarationTemplate, moduleData{
		Export: exportName,
		Body:   render.RenderDeclaration(v),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s.d.ts: %w", stem, err)
	}

	module, err := execute(moduleTemplate, moduleData{
		Export: exportName,
		Body:   render.RenderValue(v),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s.js: %w", stem, err)
	}

	return []GeneratedFile{
		{Filename: stem + ".json", Content: data},
		{Filename: stem + ".d.ts", Content: declaration},
		{Filename: stem + ".js", Content: module},
	}, nil
}

func execute(t *template.Template, data moduleData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
