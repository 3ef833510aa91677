package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return payload
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	for _, name := range []string{ResumeDocumentSchema, ResumeVersionSchema, ApplicationSchema, CommentSchema} {
		path := ResolveSchemaPath(name)
		require.NotEmpty(t, path, "schema %s should resolve", name)
		assert.FileExists(t, path)
	}
	assert.Empty(t, ResolveSchemaPath("no_such.schema.json"))
}

func TestValidateFile_SampleResumeIsValid(t *testing.T) {
	schemaPath := ResolveSchemaPath(ResumeDocumentSchema)
	require.NotEmpty(t, schemaPath)

	err := ValidateFile(schemaPath, mustMarshal(t, sample.Resume()))
	assert.NoError(t, err)
}

func TestValidateFile_RejectsBadRoleType(t *testing.T) {
	doc := sample.Resume()
	doc.Experience[0].Bullets[0].RoleType = "Wizardry"

	err := ValidateFile(ResolveSchemaPath(ResumeDocumentSchema), mustMarshal(t, doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_ApplicationStatusEnum(t *testing.T) {
	schemaPath := ResolveSchemaPath(ApplicationSchema)
	require.NotEmpty(t, schemaPath)

	valid := types.ApplicationRecord{ID: "app-1", Company: "Acme", Role: "Analyst", Status: types.StatusOffer}
	assert.NoError(t, ValidateFile(schemaPath, mustMarshal(t, valid)))

	invalid := valid
	invalid.Status = "Ghosted"
	assert.Error(t, ValidateFile(schemaPath, mustMarshal(t, invalid)))
}

func TestValidateFile_VersionRecordWithEmbeddedDocument(t *testing.T) {
	schemaPath := ResolveSchemaPath(ResumeVersionSchema)
	require.NotEmpty(t, schemaPath)

	record := types.ResumeVersionRecord{
		ID:                 "v-1",
		VersionName:        "Draft",
		SelectedBulletIDs:  []string{"exp-1-b1"},
		FinalResumeContent: *sample.Resume(),
		Timestamp:          "2026-08-01T00:00:00Z",
	}
	assert.NoError(t, ValidateFile(schemaPath, mustMarshal(t, record)))

	record.Timestamp = ""
	assert.Error(t, ValidateFile(schemaPath, mustMarshal(t, record)))
}

func TestValidateFile_MissingSchema(t *testing.T) {
	err := ValidateFile("does_not_exist.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes(t *testing.T) {
	schema := []byte(`{"type":"object","required":["id"],"properties":{"id":{"type":"string"}}}`)

	assert.NoError(t, ValidateBytes(schema, []byte(`{"id":"x"}`)))
	assert.Error(t, ValidateBytes(schema, []byte(`{}`)))
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateBytes(
		[]byte(`{"type":"object","required":["id","name"]}`),
		[]byte(`{}`),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "required")
}
