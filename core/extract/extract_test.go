package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "plain JSON object",
			input: `{"topic":"T"}`,
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "fenced block with json tag",
			input: "```json\n{\"topic\":\"T\"}\n```",
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "fenced block without tag",
			input: "```\n{\"topic\":\"T\"}\n```",
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "JSON surrounded by prose",
			input: `Sure! Here is your outline: {"topic":"T"} Hope it helps.`,
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "fenced block surrounded by prose",
			input: "Here you go:\n```json\n{\"topic\":\"T\"}\n```\nLet me know!",
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "empty input treated as empty object",
			input: "",
			want:  map[string]any{},
		},
		{
			name:  "whitespace-only input treated as empty object",
			input: "  \n\t ",
			want:  map[string]any{},
		},
		{
			name:  "nested braces resolve to outermost pair",
			input: `noise {"a":{"b":1}} trailing`,
			want:  map[string]any{"a": map[string]any{"b": float64(1)}},
		},
		{
			name:  "truncated JSON is repaired",
			input: `{"topic":"T","pages":[{"title":"P1"`,
			want: map[string]any{
				"topic": "T",
				"pages": []any{map[string]any{"title": "P1"}},
			},
		},
		{
			name:  "single quotes are repaired",
			input: `{'topic': 'T'}`,
			want:  map[string]any{"topic": "T"},
		},
		{
			name:  "trailing comma is repaired",
			input: `{"topic":"T",}`,
			want:  map[string]any{"topic": "T"},
		},
		{
			name:    "pure prose with no braces",
			input:   "Sorry, I cannot produce an outline for that.",
			wantErr: true,
		},
		{
			name:    "top-level array is not an object",
			input:   `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Errorf("ExtractJSON() error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractJSON() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtractJSON_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"topic\":\"T\",\"pages\":[{\"title\":\"P1\",\"content\":\"a\\nb\"}]}\n```",
		`Some prose {"a":1,"b":{"c":[1,2]}} more prose`,
	}

	for _, input := range inputs {
		first, err := ExtractJSON(input)
		if err != nil {
			t.Fatalf("first extraction failed: %v", err)
		}

		encoded, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		second, err := ExtractJSON(string(encoded))
		if err != nil {
			t.Fatalf("second extraction failed: %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("re-extraction changed the value: %#v != %#v", first, second)
		}
	}
}

func TestExtractAs(t *testing.T) {
	type design struct {
		Style struct {
			Name string `json:"name"`
		} `json:"style"`
	}

	t.Run("typed payload", func(t *testing.T) {
		got, err := ExtractAs[design]("```json\n{\"style\":{\"name\":\"Bauhaus\"}}\n```")
		if err != nil {
			t.Fatalf("ExtractAs() error = %v", err)
		}
		if got.Style.Name != "Bauhaus" {
			t.Errorf("Style.Name = %q, want %q", got.Style.Name, "Bauhaus")
		}
	})

	t.Run("prose fails with sentinel", func(t *testing.T) {
		_, err := ExtractAs[design]("no structured data here")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text is trimmed",
			input: "  [subject] + [scene]  \n",
			want:  "[subject] + [scene]",
		},
		{
			name:  "fenced text is unwrapped",
			input: "```\n[subject] + [scene]\n```",
			want:  "[subject] + [scene]",
		},
		{
			name:  "empty input",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.input); got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
