package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"price": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("test.schema.json", []byte(testSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{"valid data", `{"name": "Lucky Charm", "price": 500}`, false, ""},
		{"valid without optional field", `{"name": "Ticket"}`, false, ""},
		{"missing required field", `{"price": 25}`, true, "required"},
		{"wrong type for field", `{"name": "X", "price": "cheap"}`, true, "/price"},
		{"negative price", `{"name": "X", "price": -1}`, true, "minimum"},
		{"invalid json", `{"name":`, true, "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "test.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestSchemaValidator_AddSchemaIsIdempotent(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("a.json", []byte(testSchema)))
	require.NoError(t, v.AddSchema("a.json", []byte(testSchema)))
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.AddSchema("bad.json", []byte(`{"type": 12`))
	require.Error(t, err)
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("test.schema.json", []byte(testSchema)))

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "ok"}`), 0o644))

	assert.NoError(t, v.ValidateFile(path, "test.schema.json"))

	err := v.ValidateFile(filepath.Join(dir, "nope.json"), "test.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}
