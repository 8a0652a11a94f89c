// Package schemacheck validates loosely-typed documents (JSON or YAML) against a
// JSON Schema reflected from a Go type.
package schemacheck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Validator checks documents against a compiled schema.
type Validator struct {
	name   string
	schema *santhosh.Schema
}

// Reflect generates the JSON Schema for prototype the way the config schema is generated.
func Reflect(prototype any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		Anonymous:                  true,
	}
	return r.Reflect(prototype)
}

// New compiles a validator for the shape of prototype.
func New(name string, prototype any) (*Validator, error) {
	raw, err := json.Marshal(Reflect(prototype))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s schema: %w", name, err)
	}
	doc, err := santhosh.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s schema: %w", name, err)
	}

	loc := name + ".schema.json"
	c := santhosh.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("failed to add %s schema: %w", name, err)
	}
	sch, err := c.Compile(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", name, err)
	}
	return &Validator{name: name, schema: sch}, nil
}

// MustNew is New for package-level validators built from static types.
func MustNew(name string, prototype any) *Validator {
	v, err := New(name, prototype)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateJSON validates a JSON document.
func (v *Validator) ValidateJSON(data []byte) error {
	inst, err := santhosh.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(inst); err != nil {
		return fmt.Errorf("%s does not match schema: %w", v.name, err)
	}
	return nil
}

// ValidateYAML validates a YAML document by round-tripping it through JSON so the
// validator sees the same value types it would for a JSON file.
func (v *Validator) ValidateYAML(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return v.ValidateJSON(raw)
}
