package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputJSON = `{
  "system_name": "Coolant Loop",
  "system_description": "Closed-loop liquid cooling",
  "components": [
    {"name": "Pump", "function": "Circulate coolant"}
  ],
  "scope": "process"
}`

const inputYAML = `system_name: Coolant Loop
system_description: Closed-loop liquid cooling
components:
  - name: Pump
    function: Circulate coolant
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRequestFromFile_JSON(t *testing.T) {
	req, err := loadRequestFromFile(writeTemp(t, "input.json", inputJSON))
	require.NoError(t, err)
	assert.Equal(t, "Coolant Loop", req.SystemName)
	assert.Equal(t, fmea.ScopeProcess, req.Scope)
	require.Len(t, req.Components, 1)
	assert.Equal(t, "Pump", req.Components[0].Name)
}

func TestLoadRequestFromFile_YAML(t *testing.T) {
	req, err := loadRequestFromFile(writeTemp(t, "input.yaml", inputYAML))
	require.NoError(t, err)
	assert.Equal(t, "Coolant Loop", req.SystemName)
	assert.Equal(t, fmea.ScopeDesign, req.Scope, "scope defaults when omitted")
}

func TestLoadRequestFromFile_Missing(t *testing.T) {
	_, err := loadRequestFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadRequestFromFile_MalformedJSON(t *testing.T) {
	_, err := loadRequestFromFile(writeTemp(t, "bad.json", `{"system_name": }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoadRequestFromFile_FailsValidation(t *testing.T) {
	_, err := loadRequestFromFile(writeTemp(t, "empty.json", `{"system_name": "X", "system_description": "Y", "components": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one component")
}

func TestLoadRequestFromReader(t *testing.T) {
	req, err := loadRequestFromReader(strings.NewReader(inputJSON))
	require.NoError(t, err)
	assert.Equal(t, "Coolant Loop", req.SystemName)
}

func TestLoadRequestFromReader_MalformedJSON(t *testing.T) {
	_, err := loadRequestFromReader(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON on stdin")
}

func TestExampleRequest_IsValid(t *testing.T) {
	req := exampleRequest
	require.NoError(t, req.Validate())
	assert.Len(t, req.Components, 5)
	assert.Equal(t, fmea.ScopeDesign, req.Scope)
}
