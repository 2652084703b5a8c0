package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSSEScannerNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single data event",
			input: "data: {\"a\":1}\n\n",
			want:  []string{`{"a":1}`},
		},
		{
			name:  "multiple events",
			input: "data: one\n\ndata: two\n\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "multi-line data joined with newline",
			input: "data: first\ndata: second\n\n",
			want:  []string{"first\nsecond"},
		},
		{
			name:  "comments and blank lines skipped",
			input: ": keep-alive\n\ndata: payload\n\n: another comment\n",
			want:  []string{"payload"},
		},
		{
			name:  "DONE sentinel ends the stream",
			input: "data: before\n\ndata: [DONE]\n\ndata: after\n\n",
			want:  []string{"before"},
		},
		{
			name:  "other SSE fields ignored",
			input: "event: message\nid: 42\ndata: payload\n\n",
			want:  []string{"payload"},
		},
		{
			name:  "trailing data without blank line still flushed",
			input: "data: last",
			want:  []string{"last"},
		},
		{
			name:  "empty stream",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewSSEScanner(strings.NewReader(tt.input))

			var got []string
			for {
				payload, err := scanner.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("Next() error = %v", err)
				}
				got = append(got, payload)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("payloads = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("payloads[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSSEScannerNext_LineTooLong(t *testing.T) {
	oversized := "data: " + strings.Repeat("x", maxSSELineSize+1) + "\n\n"
	scanner := NewSSEScanner(strings.NewReader(oversized))

	if _, err := scanner.Next(); err == nil || err == io.EOF {
		t.Errorf("Next() error = %v, want line-too-long error", err)
	}
}

func TestDoPostStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "text/event-stream" {
			t.Errorf("Accept = %q, want text/event-stream", accept)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: chunk\n\ndata: [DONE]\n\n")
	}))
	defer server.Close()

	response, err := DoPostStream(context.Background(), server.Client(), server.URL, "key", map[string]string{"q": "x"})
	if err != nil {
		t.Fatalf("DoPostStream() error = %v", err)
	}
	defer response.Body.Close()

	scanner := NewSSEScanner(response.Body)
	payload, err := scanner.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if payload != "chunk" {
		t.Errorf("payload = %q, want %q", payload, "chunk")
	}
	if _, err := scanner.Next(); err != io.EOF {
		t.Errorf("second Next() error = %v, want io.EOF", err)
	}
}

func TestDoPostStream_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	_, err := DoPostStream(context.Background(), server.Client(), server.URL, "key", nil)
	if err == nil {
		t.Fatal("DoPostStream() error = nil, want status error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %v does not carry the response body", err)
	}
}

func TestDoPostStream_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DoPostStream(ctx, http.DefaultClient, "http://127.0.0.1:0", "key", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
