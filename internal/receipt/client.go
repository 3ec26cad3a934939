package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"carline/internal/config"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client performs the single outbound call to the vision completion service.
// It is the only network I/O boundary in the receipt pipeline; a failed call
// is terminal for the request, retry policy belongs to the caller.
type Client struct {
	apiKey      string
	model       string
	endpoint    string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewClient creates a completion client from the AI config. An empty
// cfg.Endpoint targets the real API; tests point it at a local server.
func NewClient(cfg *config.AIConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// apiResponse models the Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the fixed prompt plus the cleaned base64 image and returns
// the first choice's text content.
func (c *Client) Complete(ctx context.Context, image string) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": BuildPrompt(),
					},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": "data:image/jpeg;base64," + image,
						},
					},
				},
			},
		},
		"max_tokens": c.maxTokens,
		// Low temperature biases toward literal extraction over creative completion.
		"temperature": c.temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Status: resp.Status, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{
			Status: resp.Status,
			Err:    fmt.Errorf("completion API error: %s", truncate(string(respBody), 500)),
		}
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UpstreamError{Status: resp.Status, Err: fmt.Errorf("unmarshaling response: %w", err)}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &UpstreamError{Status: "empty response", Err: fmt.Errorf("no content in completion")}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
