package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSchema is wrapped by every schema load failure.
	ErrMalformedSchema = errors.New("malformed config schema")
	// ErrMalformedCatalog is wrapped by every tool catalog load failure.
	ErrMalformedCatalog = errors.New("malformed tool catalog")
)

type NoAssistantError struct {
	ID string
}

func (e NoAssistantError) Error() string {
	if e.ID == "" {
		return "no assistants found"
	}
	return fmt.Sprintf("assistant %q not found", e.ID)
}

func IsNoAssistantError(err error) bool {
	var target NoAssistantError
	return errors.As(err, &target)
}

// SchemaError reports which field of a schema document could not be used.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedSchema, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrMalformedSchema, e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrMalformedSchema }

// CatalogError reports a bad tool catalog entry.
type CatalogError struct {
	Source string
	ToolID string
	Reason string
}

func (e *CatalogError) Error() string {
	switch {
	case e.ToolID != "":
		return fmt.Sprintf("%s: %s: tool %q: %s", ErrMalformedCatalog, e.Source, e.ToolID, e.Reason)
	default:
		return fmt.Sprintf("%s: %s: %s", ErrMalformedCatalog, e.Source, e.Reason)
	}
}

func (e *CatalogError) Unwrap() error { return ErrMalformedCatalog }
