package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"deckplan/internal/httpx"
	"deckplan/providers/ai"
	"deckplan/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// placeholderAPIKey is the literal left behind by untouched .env templates.
	// It is treated the same as a missing key.
	placeholderAPIKey = "your_api_key_here"
)

// Provider implements ai.Provider and ai.StreamProvider against any
// OpenAI-compatible chat completions endpoint. The default base URL points at
// the OpenAI API; override it with WithBaseURL (or DECKPLAN_BASE_URL) for
// compatible gateways such as OpenRouter or the Volcengine Ark endpoint.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider instance with configuration read from the
// environment: DECKPLAN_API_KEY for the key and DECKPLAN_BASE_URL for the
// endpoint (falling back to the OpenAI API).
func New() *Provider {
	apiKey := os.Getenv("DECKPLAN_API_KEY")
	baseURL := os.Getenv("DECKPLAN_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHTTPClient sets a custom HTTP client
func (p *Provider) WithHTTPClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// checkAPIKey validates that a usable key is configured.
func (p *Provider) checkAPIKey() error {
	if p.apiKey == "" || p.apiKey == placeholderAPIKey {
		return ai.ErrAPIKeyMissing
	}
	return nil
}

// SendMessage implements the ai.Provider interface
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if err := p.checkAPIKey(); err != nil {
		return nil, err
	}

	observer := observability.ObserverFromContext(ctx)
	if observer != nil {
		observer.Trace(ctx, "OpenAI provider sending request",
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
	}

	httpResponse, resp, err := httpx.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestToChatCompletion(request))
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from chat completions API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return responseToGeneric(*resp), nil
}
