package fmea_test

import (
	"testing"

	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() fmea.AnalysisRequest {
	return fmea.AnalysisRequest{
		SystemName:        "Test System",
		SystemDescription: "A system under test",
		Components: []fmea.ComponentSpec{
			{Name: "Pump", Function: "Circulate coolant"},
		},
	}
}

func TestRequestValidate_DefaultsScope(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, fmea.ScopeDesign, req.Scope)
}

func TestRequestValidate_AcceptsKnownScopes(t *testing.T) {
	for _, scope := range []fmea.Scope{fmea.ScopeDesign, fmea.ScopeProcess, fmea.ScopeSystem} {
		req := validRequest()
		req.Scope = scope
		require.NoError(t, req.Validate())
		assert.Equal(t, scope, req.Scope)
	}
}

func TestRequestValidate_RejectsUnknownScope(t *testing.T) {
	req := validRequest()
	req.Scope = "manufacturing"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manufacturing")
}

func TestRequestValidate_RejectsMissingFields(t *testing.T) {
	req := validRequest()
	req.SystemName = ""
	require.Error(t, req.Validate())

	req = validRequest()
	req.SystemDescription = ""
	require.Error(t, req.Validate())

	req = validRequest()
	req.Components = nil
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one component")
}

func TestRequestValidate_RejectsEmptyComponentFields(t *testing.T) {
	req := validRequest()
	req.Components = append(req.Components, fmea.ComponentSpec{Name: "Valve", Function: ""})
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "components[1].function")
}
