// Package schemas validates persisted workspace records against the JSON
// Schema files in the repository's schemas/ directory.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema file names under schemas/
const (
	ResumeDocumentSchema = "resume_document.schema.json"
	ResumeVersionSchema  = "resume_version.schema.json"
	ApplicationSchema    = "application.schema.json"
	CommentSchema        = "comment.schema.json"
)

// FieldError is a single validation failure at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field failure from one validation run
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be loaded or parsed
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ResolveSchemaPath finds a schema file relative to the working directory,
// trying up to two parent directories so commands and tests can run from
// anywhere in the repo. Returns "" when nothing matches.
func ResolveSchemaPath(name string) string {
	candidates := []string{
		filepath.Join("schemas", name),
		filepath.Join("..", "schemas", name),
		filepath.Join("..", "..", "schemas", name),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidateBytes validates a JSON document against schema content
func ValidateBytes(schemaContent, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaContent),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Path: "(inline schema)", Message: "validation could not run", Cause: err}
	}
	return resultError(result)
}

// ValidateFile validates a JSON document against a schema file on disk
func ValidateFile(schemaPath string, document []byte) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "could not resolve path", Cause: err}
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return &SchemaLoadError{Path: absPath, Message: "schema file not found"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewReferenceLoader("file://"+absPath),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Path: absPath, Message: "validation could not run", Cause: err}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}
	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return validationErr
}
