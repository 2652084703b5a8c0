package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"deckplan/internal/httpx"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "deckplan-source/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// maxRedirects caps redirect chains
	maxRedirects = 10
)

// Input describes a web page to use as seed material.
type Input struct {
	URL            string `json:"url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// Output is the fetched page, converted to Markdown. URL is the final URL
// after redirects.
type Output struct {
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// Fetch retrieves the web page at req.URL and returns its content as
// Markdown, suitable for use as the topic seed of an outline generation.
//
// Partial URLs (e.g. "example.com") are normalised by prepending "https://".
// The request timeout is taken from req.TimeoutSeconds when set, otherwise
// [DefaultTimeout] is used. Up to ten HTTP redirects are followed; the final
// URL after all redirects is returned in [Output.URL]. The response body is
// capped at [MaxBodySize] bytes.
//
// Fetch returns an error when the URL is empty, the HTTP status is not
// 200 OK, the body exceeds [MaxBodySize], HTML-to-Markdown conversion fails,
// or the context is cancelled or times out.
func Fetch(ctx context.Context, req Input) (Output, error) {
	// Validate and normalize URL
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return Output{}, fmt.Errorf("URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &http.Client{
		CheckRedirect: func(request *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Output{}, fmt.Errorf("error creating request: %w", err)
	}
	request.Header.Set("User-Agent", DefaultUserAgent)

	response, err := client.Do(request)
	if err != nil {
		return Output{}, fmt.Errorf("error fetching %s: %w", url, err)
	}
	defer httpx.CloseWithLog(response.Body)

	if response.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("unexpected status %d fetching %s", response.StatusCode, url)
	}

	// Read one byte past the cap to distinguish "exactly at the limit" from
	// "over the limit".
	body, err := io.ReadAll(io.LimitReader(response.Body, MaxBodySize+1))
	if err != nil {
		return Output{}, fmt.Errorf("error reading response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return Output{}, fmt.Errorf("response body exceeds %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return Output{}, fmt.Errorf("error converting HTML to Markdown: %w", err)
	}

	finalURL := url
	if response.Request != nil && response.Request.URL != nil {
		finalURL = response.Request.URL.String()
	}

	return Output{URL: finalURL, Markdown: markdown}, nil
}
