package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"countrycodes-generator/value"
)

// ErrOutput is wrapped by every failure to produce an output file.
var ErrOutput = errors.New("output error")

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist and overwrites existing files.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrOutput, err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("%w: writing file %s: %w", ErrOutput, file.Filename, err)
		}
	}

	return nil
}

// WriteModule builds the module files for v and writes them to dir.
func WriteModule(dir, stem, exportName string, v value.Value) error {
	files, err := BuildModule(stem, exportName, v)
	if err != nil {
		return err
	}

	return WriteFiles(files, dir)
}

// WriteJSON writes x to path as 2-space indented JSON, creating the parent
// directory if needed.
func WriteJSON(path string, x any) error {
	data, err := value.MarshalIndent(x, jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	return WriteFiles([]GeneratedFile{{Filename: filepath.Base(path), Content: data}}, filepath.Dir(path))
}
