package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, DefaultUserAgent)
		}
		io.WriteString(w, "<html><body><h1>Title</h1><p>Some <strong>bold</strong> text.</p></body></html>")
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: server.URL})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if output.URL != server.URL {
		t.Errorf("URL = %q, want %q", output.URL, server.URL)
	}
	for _, want := range []string{"# Title", "**bold**"} {
		if !strings.Contains(output.Markdown, want) {
			t.Errorf("Markdown missing %q in:\n%s", want, output.Markdown)
		}
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	if _, err := Fetch(context.Background(), Input{URL: "   "}); err == nil {
		t.Error("Fetch() error = nil, want empty-URL error")
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), Input{URL: server.URL}); err == nil {
		t.Error("Fetch() error = nil, want status error")
	}
}

func TestFetch_FollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/start":
			http.Redirect(w, r, "/final", http.StatusFound)
		case "/final":
			io.WriteString(w, "<p>landed</p>")
		default:
			http.NotFound(w, r)
		}
	}))
	defer target.Close()

	output, err := Fetch(context.Background(), Input{URL: target.URL + "/start"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.HasSuffix(output.URL, "/final") {
		t.Errorf("URL = %q, want the post-redirect URL", output.URL)
	}
	if !strings.Contains(output.Markdown, "landed") {
		t.Errorf("Markdown = %q, want redirect target content", output.Markdown)
	}
}

func TestFetch_TooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL, http.StatusFound)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), Input{URL: server.URL}); err == nil {
		t.Error("Fetch() error = nil, want redirect-loop error")
	}
}

func TestFetch_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		chunk := strings.Repeat("a", 1024*1024)
		for written := 0; written <= MaxBodySize; written += len(chunk) {
			if _, err := io.WriteString(w, chunk); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), Input{URL: server.URL}); err == nil {
		t.Error("Fetch() error = nil, want body-size error")
	}
}

func TestFetch_SchemePrefixing(t *testing.T) {
	// A bare host must gain the https scheme; the resulting dial fails, but
	// the error message proves the normalised URL was used.
	_, err := Fetch(context.Background(), Input{URL: "nonexistent.invalid", TimeoutSeconds: 1})
	if err == nil {
		t.Fatal("Fetch() error = nil, want dial error")
	}
	if !strings.Contains(err.Error(), "https://nonexistent.invalid") {
		t.Errorf("error %v does not show the https-prefixed URL", err)
	}
}
