package prompts_test

import (
	"testing"

	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/helmcode/fmea-ai/pkg/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPrompt_EmbedsRequest(t *testing.T) {
	req := fmea.AnalysisRequest{
		SystemName:        "Coolant Loop",
		SystemDescription: "Closed-loop liquid cooling for a power inverter",
		Components: []fmea.ComponentSpec{
			{Name: "Pump", Function: "Circulate coolant"},
			{Name: "Radiator", Function: "Reject heat to ambient air"},
		},
		Scope: fmea.ScopeDesign,
	}

	prompt, err := prompts.BuildUserPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Coolant Loop")
	assert.Contains(t, prompt, "design")
	assert.Contains(t, prompt, "Closed-loop liquid cooling")
	assert.Contains(t, prompt, `"name": "Pump"`)
	assert.Contains(t, prompt, `"function": "Reject heat to ambient air"`)
	assert.Contains(t, prompt, "ONLY the JSON array")
}

func TestSystemPrompt_StatesContract(t *testing.T) {
	assert.Contains(t, prompts.SystemPrompt, "IEC 60812:2018")
	assert.Contains(t, prompts.SystemPrompt, "RPN = Severity x Occurrence x Detection")
	assert.Contains(t, prompts.SystemPrompt, "Critical (>= 400)")
	assert.Contains(t, prompts.SystemPrompt, "High (200-399)")
	assert.Contains(t, prompts.SystemPrompt, "Medium (100-199)")
	assert.Contains(t, prompts.SystemPrompt, "Low (< 100)")
	assert.Contains(t, prompts.SystemPrompt, "starting with [ and ending with ]")
}
