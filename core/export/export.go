package export

import (
	"fmt"
	"regexp"
	"strings"

	"deckplan/core/deck"
)

// Text renders a deck as a flat plain-text document: topic, the color or
// design block in effect, then one section per slide. It is a pure function
// of the deck.
func Text(d *deck.Deck) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(d.Topic)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(d.Topic)))
	b.WriteString("\n\n")

	if scheme := d.SelectedColorScheme; scheme != nil {
		b.WriteString(fmt.Sprintf("Color scheme: %s (primary %s", scheme.Name, scheme.Primary))
		if background := scheme.Background(); background != "" {
			b.WriteString(", background " + background)
		}
		if accent := scheme.Accent(); accent != "" {
			b.WriteString(", accent " + accent)
		}
		b.WriteString(")\n\n")
	} else if design := d.Design; design != nil {
		b.WriteString(fmt.Sprintf("Design style: %s — %s\n", design.Style.Name, design.Style.Description))
		b.WriteString(fmt.Sprintf("Primary color: %s (%s)\n", design.Colors.Primary.Name, design.Colors.Primary.Hex))
		for _, secondary := range design.Colors.Secondary {
			b.WriteString(fmt.Sprintf("Secondary color: %s (%s)\n", secondary.Name, secondary.Hex))
		}
		b.WriteString(fmt.Sprintf("Fonts: %s / %s\n\n", design.Fonts.Title, design.Fonts.Body))
	}

	for index, page := range d.Pages {
		b.WriteString(fmt.Sprintf("Slide %d [%s]: %s\n", index+1, page.Type, page.Title))
		if page.Content != "" {
			b.WriteString(page.Content)
			b.WriteString("\n")
		}
		if label := visualLabel(page); label != "" {
			b.WriteString(label)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Markdown renders a deck as a markdown document with one "## Slide N" header
// per page. It is a pure function of the deck.
func Markdown(d *deck.Deck) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", d.Topic))

	for index, page := range d.Pages {
		b.WriteString(fmt.Sprintf("## Slide %d (%s): %s\n\n", index+1, page.Type, page.Title))
		b.WriteString("### Content\n")
		b.WriteString(page.Content)
		b.WriteString("\n\n")
		if label := visualLabel(page); label != "" {
			b.WriteString("### Visual Suggestion\n")
			b.WriteString(label)
			b.WriteString("\n\n")
		}
		b.WriteString("---\n\n")
	}

	return b.String()
}

// visualLabel renders the visual line for a page: the free-text prompt when
// enabled, otherwise the coarse image-type tag when present.
func visualLabel(page deck.Page) string {
	if page.Visual != "" && page.VisualApplies() {
		return "Visual: " + page.Visual
	}
	if page.ImageType != "" {
		return "Image type: " + string(page.ImageType)
	}
	return ""
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives a download-friendly file name from the deck topic,
// collapsing whitespace runs into underscores.
func Filename(topic, extension string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(topic), "_")
	if name == "" {
		name = "deck"
	}
	return name + "_plan." + strings.TrimPrefix(extension, ".")
}
