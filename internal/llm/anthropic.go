package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rowanvale/inkwell/internal/output"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	// The Messages API requires max_tokens; applied when the request
	// leaves it unset.
	anthropicDefaultMaxTokens = 4096
)

// Anthropic Messages API types.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// text concatenates the response's text blocks, skipping any other kind.
func (r anthropicResponse) text() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

func (c *Client) completeAnthropic(ctx context.Context, req Request) (*Response, error) {
	body := anthropicRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  []anthropicMessage{{Role: "user", Content: req.Prompt}},
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = anthropicDefaultMaxTokens
	}

	respBody, err := c.doRequest(ctx, anthropicEndpoint, body, map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
	})
	if err != nil {
		return nil, err
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, output.NewSystemError("API error: " + result.Error.Message)
	}

	content := result.text()
	if content == "" {
		return nil, output.NewSystemError("response contained no text content")
	}
	return &Response{Content: content, Model: c.model}, nil
}
