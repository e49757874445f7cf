package llm_test

import (
	"testing"

	"github.com/helmcode/fmea-ai/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromEnv_DefaultsToClaude(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CLAUDE_MODEL", "")

	client, err := llm.CreateFromEnv("", "", llm.Options{})
	require.NoError(t, err)
	assert.IsType(t, &llm.Claude{}, client)
	assert.Equal(t, "claude-sonnet-4-20250514", client.Model())
}

func TestCreateFromEnv_MissingAnthropicKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := llm.CreateFromEnv("", "", llm.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestCreateFromEnv_OpenAIProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")

	client, err := llm.CreateFromEnv("openai", "", llm.Options{})
	require.NoError(t, err)
	assert.IsType(t, &llm.OpenAI{}, client)
	assert.Equal(t, "gpt-4o", client.Model())
}

func TestCreateFromEnv_MissingOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := llm.CreateFromEnv("openai", "", llm.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestCreateFromEnv_ModelOverrideWins(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CLAUDE_MODEL", "claude-from-env")

	client, err := llm.CreateFromEnv("claude", "claude-from-flag", llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, "claude-from-flag", client.Model())
}

func TestCreateFromEnv_EnvModelUsedWithoutOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CLAUDE_MODEL", "claude-from-env")

	client, err := llm.CreateFromEnv("claude", "", llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, "claude-from-env", client.Model())
}

func TestCreateFromEnv_UnknownProvider(t *testing.T) {
	_, err := llm.CreateFromEnv("bard", "", llm.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
