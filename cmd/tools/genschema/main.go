// genschema writes JSON Schemas for the files users hand-edit: the gptsmith config
// file and tool catalog entries.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/schemacheck"
)

func generate(kind string) (*jsonschema.Schema, error) {
	switch kind {
	case "config":
		return config.GenerateJSONSchema()
	case "tool":
		schema := schemacheck.Reflect(&domain.ToolSchema{})
		schema.Title = "gptsmith Tool Schema"
		schema.Description = "A tool catalog entry, one per YAML or JSON file in toolsDir"
		return schema, nil
	default:
		return nil, fmt.Errorf("unknown schema kind %q (want config or tool)", kind)
	}
}

func main() {
	var outFile, kind string
	flag.StringVar(&outFile, "out", "", "Output file path (defaults to <kind>.schema.json)")
	flag.StringVar(&kind, "kind", "config", "Schema to generate: config or tool")
	flag.Parse()

	if outFile == "" {
		outFile = kind + ".schema.json"
	}
	if !filepath.IsAbs(outFile) {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		outFile = filepath.Join(wd, outFile)
	}

	schema, err := generate(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling schema: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Dir(outFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", dir, err)
		os.Exit(1)
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema to %s: %v\n", outFile, err)
		os.Exit(1)
	}
	fmt.Printf("Schema written to %s\n", outFile)
}
