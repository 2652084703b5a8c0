package export

import (
	"strings"
	"testing"

	"deckplan/core/deck"
)

func sampleDeck() *deck.Deck {
	disabled := false
	return &deck.Deck{
		Topic: "Quarterly Results",
		Pages: []deck.Page{
			{ID: "p1", Title: "Welcome", Type: deck.PageTitle, Content: "Q3 2026"},
			{ID: "p2", Title: "Revenue", Type: deck.PageContent, Content: "up 12%\nnew markets", Visual: "bar chart, upward trend"},
			{ID: "p3", Title: "Risks", Type: deck.PageContent, Visual: "storm clouds", VisualEnabled: &disabled, ImageType: deck.ImageLogic},
		},
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown(sampleDeck())

	wantLines := []string{
		"# Quarterly Results",
		"## Slide 1 (title): Welcome",
		"## Slide 2 (content): Revenue",
		"## Slide 3 (content): Risks",
		"### Content",
		"### Visual Suggestion",
		"Visual: bar chart, upward trend",
		"---",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, got)
		}
	}

	// The disabled visual must fall back to the image-type tag.
	if strings.Contains(got, "storm clouds") {
		t.Error("Markdown() rendered a disabled visual prompt")
	}
	if !strings.Contains(got, "Image type: logic") {
		t.Error("Markdown() missing image-type fallback for disabled visual")
	}
}

func TestText(t *testing.T) {
	got := Text(sampleDeck())

	wantLines := []string{
		"Quarterly Results",
		strings.Repeat("=", len("Quarterly Results")),
		"Slide 1 [title]: Welcome",
		"Slide 2 [content]: Revenue",
		"up 12%\nnew markets",
		"Visual: bar chart, upward trend",
		"Slide 3 [content]: Risks",
		"Image type: logic",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("Text() missing %q in:\n%s", want, got)
		}
	}
}

func TestText_SchemeAndDesignBlocks(t *testing.T) {
	t.Run("selected scheme wins over design", func(t *testing.T) {
		d := sampleDeck()
		d.SelectedColorScheme = &deck.ColorScheme{
			Name:      "Dusk",
			Primary:   "#1C1C1E",
			Secondary: []string{"#F2F2F7", "#FF9F0A"},
		}
		d.Design = &deck.DesignSystem{Style: deck.DesignStyle{Name: "Minimal"}}

		got := Text(d)
		if !strings.Contains(got, "Color scheme: Dusk (primary #1C1C1E, background #F2F2F7, accent #FF9F0A)") {
			t.Errorf("Text() missing scheme line in:\n%s", got)
		}
		if strings.Contains(got, "Design style") {
			t.Error("Text() rendered the design block despite a selected scheme")
		}
	})

	t.Run("design block when no scheme selected", func(t *testing.T) {
		d := sampleDeck()
		d.Design = &deck.DesignSystem{
			Style:  deck.DesignStyle{Name: "Minimal", Description: "clean lines"},
			Colors: deck.DesignColors{Primary: deck.NamedColor{Name: "Ink", Hex: "#111"}},
			Fonts:  deck.DesignFonts{Title: "Inter", Body: "Georgia"},
		}

		got := Text(d)
		for _, want := range []string{"Design style: Minimal", "Primary color: Ink (#111)", "Fonts: Inter / Georgia"} {
			if !strings.Contains(got, want) {
				t.Errorf("Text() missing %q in:\n%s", want, got)
			}
		}
	})
}

func TestNilDeck(t *testing.T) {
	if Text(nil) != "" {
		t.Error("Text(nil) should be empty")
	}
	if Markdown(nil) != "" {
		t.Error("Markdown(nil) should be empty")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		topic     string
		extension string
		want      string
	}{
		{name: "spaces collapse to underscores", topic: "Quarterly  Results", extension: "md", want: "Quarterly_Results_plan.md"},
		{name: "mixed whitespace", topic: " a\tb\nc ", extension: "txt", want: "a_b_c_plan.txt"},
		{name: "empty topic falls back", topic: "   ", extension: "md", want: "deck_plan.md"},
		{name: "dotted extension accepted", topic: "T", extension: ".txt", want: "T_plan.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.topic, tt.extension); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}
