package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		schemas.ResumeDocumentSchema,
		schemas.ResumeVersionSchema,
		schemas.ApplicationSchema,
		schemas.CommentSchema,
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(raw, &parsed))
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", parsed["$schema"])
			assert.NotEmpty(t, parsed["title"])
			assert.Equal(t, "object", parsed["type"])
		})
	}
}

func TestSchemaFiles_ResolveFromPackageDirs(t *testing.T) {
	path := schemas.ResolveSchemaPath(schemas.ApplicationSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}
