// Package llm provides a minimal multi-provider completion client.
//
// The client is constructed from workspace configuration: provider, model,
// and the *name* of the environment variable holding the API key. The key
// itself only ever lives in the process environment. Each call is a single
// attempt: no retry or backoff, failures propagate to the caller.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rowanvale/inkwell/internal/config"
	"github.com/rowanvale/inkwell/internal/output"
)

// Provider identifies a completion provider.
type Provider string

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderLocal     Provider = "local"
)

// Request is one completion request.
type Request struct {
	System    string // optional role/system prompt
	Prompt    string // user prompt
	MaxTokens int    // token ceiling (0 uses the provider default)
}

// Response is one completion response.
type Response struct {
	Content string
	Model   string
}

// HTTPDoer is the HTTP surface the client needs. It exists so tests can
// inject doubles.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a provider-agnostic completion client.
type Client struct {
	provider   Provider
	model      string
	apiKey     string
	httpClient HTTPDoer
}

// defaultKeyEnvVars maps providers to their conventional API key env vars,
// used when the config does not name one.
var defaultKeyEnvVars = map[Provider]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderGoogle:    "GOOGLE_API_KEY",
	ProviderLocal:     "",
}

// New creates a completion client from the workspace LLM configuration.
func New(cfg config.LLMConfig) (*Client, error) {
	provider := Provider(cfg.Provider)
	if _, ok := defaultKeyEnvVars[provider]; !ok {
		return nil, output.NewUserError(fmt.Sprintf("unsupported provider %q (supported: anthropic, openai, google, local)", cfg.Provider))
	}

	apiKey, err := resolveAPIKey(provider, cfg.APIKeyEnvName)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: provider,
		model:    cfg.Model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

// resolveAPIKey reads the key from the configured env var name, falling
// back to the provider's conventional variable. The local provider needs
// no key.
func resolveAPIKey(provider Provider, envName string) (string, error) {
	if provider == ProviderLocal {
		return "not-needed", nil
	}

	if envName == "" {
		envName = defaultKeyEnvVars[provider]
	}

	key := os.Getenv(envName)
	if key == "" {
		return "", output.NewUserError(envName + " environment variable not set (export it or add it to .inkwell/env)")
	}
	return key, nil
}

// Complete generates one completion. A single attempt; errors propagate
// unmodified.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	switch c.provider {
	case ProviderAnthropic:
		return c.completeAnthropic(ctx, req)
	case ProviderOpenAI:
		return c.completeOpenAI(ctx, req)
	case ProviderGoogle:
		return c.completeGoogle(ctx, req)
	case ProviderLocal:
		return c.completeLocal(ctx, req)
	default:
		return nil, output.NewUserError(fmt.Sprintf("unsupported provider: %s", c.provider))
	}
}

// LocalServerURL returns the URL for the local completion server.
// Defaults to the LM Studio endpoint.
func LocalServerURL() string {
	if url := os.Getenv("LOCAL_LLM_URL"); url != "" {
		return url
	}
	return "http://localhost:1234/v1"
}

// doRequest performs an HTTP POST with a JSON body.
func (c *Client) doRequest(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate the error body: avoids leaking large payloads into
		// terminal output.
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewSystemError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errBody))
	}

	return respBody, nil
}
