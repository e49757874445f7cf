package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const anthropicAPIURL = "https://api.anthropic.com/v1/messages"

type Claude struct {
	apiKey    string
	client    *http.Client
	model     string
	baseURL   string
	maxTokens int
}

func NewClaude(apiKey string, opts Options) *Claude {
	opts = opts.withDefaults()
	return &Claude{
		apiKey:    apiKey,
		client:    &http.Client{Timeout: opts.Timeout},
		model:     "claude-sonnet-4-20250514",
		baseURL:   anthropicAPIURL,
		maxTokens: opts.MaxTokens,
	}
}

func NewClaudeWithModel(apiKey, model string, opts Options) *Claude {
	c := NewClaude(apiKey, opts)
	c.model = model
	return c
}

func (c *Claude) Model() string { return c.model }

func (c *Claude) Chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]interface{}{
		"model":  c.model,
		"system": system,
		"messages": []map[string]string{{
			"role":    "user",
			"content": user,
		}},
		"max_tokens":  c.maxTokens,
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Claude API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	// Minimal struct to pull out the content text.
	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &claudeResp); err != nil {
		return "", err
	}
	if claudeResp.Error.Message != "" {
		return "", fmt.Errorf("Claude API error: %s", claudeResp.Error.Message)
	}
	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}
	return claudeResp.Content[0].Text, nil
}
