package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const openaiAPIURL = "https://api.openai.com/v1/chat/completions"

type OpenAI struct {
	apiKey    string
	client    *http.Client
	model     string
	baseURL   string
	maxTokens int
}

func NewOpenAI(apiKey string, opts Options) *OpenAI {
	opts = opts.withDefaults()
	return &OpenAI{
		apiKey:    apiKey,
		client:    &http.Client{Timeout: opts.Timeout},
		model:     "gpt-4o",
		baseURL:   openaiAPIURL,
		maxTokens: opts.MaxTokens,
	}
}

func NewOpenAIWithModel(apiKey, model string, opts Options) *OpenAI {
	o := NewOpenAI(apiKey, opts)
	o.model = model
	return o
}

func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"max_tokens":  o.maxTokens,
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.apiKey))

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	// OpenAI response structure
	var openaiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &openaiResp); err != nil {
		return "", err
	}
	if openaiResp.Error.Message != "" {
		return "", fmt.Errorf("OpenAI API error: %s", openaiResp.Error.Message)
	}
	if len(openaiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return openaiResp.Choices[0].Message.Content, nil
}
