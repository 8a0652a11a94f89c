package form

import (
	_ "embed"
	"fmt"
	"os"
)

// DefaultSchema is the schema document used when no schema path is configured.
//
//go:embed schemas/default.json
var DefaultSchema []byte

// LoadSchemaFile loads the schema document at path, or the built-in one when path is empty.
func LoadSchemaFile(path string) (*Schema, error) {
	if path == "" {
		return LoadSchema(DefaultSchema)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return LoadSchema(data)
}
