package deck

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultTopic is used when the model output omits the deck topic.
const DefaultTopic = "Untitled Presentation"

// rawPage is the loosely-typed wire shape of a page as emitted by the model.
// Content is deliberately `any`: models return either a string or a list of
// bullet strings depending on mood.
type rawPage struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Content       any    `json:"content"`
	Type          string `json:"type"`
	Visual        string `json:"visual"`
	VisualEnabled *bool  `json:"visualEnabled"`
	ImageType     string `json:"imageType"`
}

// Assemble turns a normalized (but still loosely-typed) JSON object into a
// canonical Deck:
//
//   - pages lacking an id get a stable generated one, unique across assembler
//     calls for the life of the process
//   - list-shaped content is joined into a single newline-separated string
//   - page types and image types are normalized onto the canonical vocabulary
//   - missing topic falls back to [DefaultTopic]
//
// Missing or wrongly-typed optional fields never fail — a non-array "pages"
// yields an empty deck, a malformed color scheme is dropped. The only hard
// failure is a parsed payload that is not a JSON object at all (nil map).
func Assemble(parsed map[string]any) (*Deck, error) {
	if parsed == nil {
		return nil, fmt.Errorf("cannot assemble deck: parsed payload is not an object")
	}

	assembled := &Deck{
		Topic: DefaultTopic,
		Pages: []Page{},
	}

	if topic, ok := parsed["topic"].(string); ok && topic != "" {
		assembled.Topic = topic
	}

	if elements, ok := parsed["pages"].([]any); ok {
		stamp := assemblyStamp()
		for index, element := range elements {
			raw, ok := decodeValueAs[rawPage](element)
			if !ok {
				continue
			}
			assembled.Pages = append(assembled.Pages, normalizePage(raw, stamp, index))
		}
	}

	if schemes, ok := decodeValueAs[[]ColorScheme](parsed["colorSchemes"]); ok {
		assembled.ColorSchemes = schemes
	}
	if design, ok := decodeValueAs[*DesignSystem](parsed["design"]); ok {
		assembled.Design = design
	}

	return assembled, nil
}

// decodeValueAs re-encodes a generic JSON value and decodes it into T.
// A value that does not fit T reports ok=false instead of failing, keeping
// the assembler total over malformed optional fields.
func decodeValueAs[T any](value any) (T, bool) {
	var result T
	if value == nil {
		return result, false
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return result, false
	}
	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, false
	}
	return result, true
}

// normalizePage coerces one loosely-typed page into its canonical form.
func normalizePage(raw rawPage, stamp int64, index int) Page {
	page := Page{
		ID:            raw.ID,
		Title:         raw.Title,
		Content:       flattenContent(raw.Content),
		Type:          NormalizePageType(raw.Type),
		Visual:        raw.Visual,
		VisualEnabled: raw.VisualEnabled,
		ImageType:     NormalizeImageType(raw.ImageType),
	}

	if page.ID == "" {
		page.ID = fmt.Sprintf("page-%d-%d", stamp, index)
	}

	// A visual prompt with no explicit toggle is considered active.
	if page.Visual != "" && page.VisualEnabled == nil {
		enabled := true
		page.VisualEnabled = &enabled
	}

	return page
}

// flattenContent coerces the heterogeneous content representations into a
// single newline-joined string. Strings pass through unchanged; lists are
// joined element by element; anything else is rendered via fmt.
func flattenContent(content any) string {
	switch value := content.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		lines := make([]string, 0, len(value))
		for _, element := range value {
			if text, ok := element.(string); ok {
				lines = append(lines, text)
				continue
			}
			lines = append(lines, fmt.Sprintf("%v", element))
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprintf("%v", value)
	}
}

// lastAssemblyStamp tracks the most recent id timestamp handed out, so two
// assembler calls within the same millisecond still produce distinct page
// ids.
var lastAssemblyStamp atomic.Int64

// assemblyStamp derives the per-call timestamp used in generated page ids.
// It is strictly monotonic across calls within one process.
func assemblyStamp() int64 {
	for {
		previous := lastAssemblyStamp.Load()
		stamp := time.Now().UnixMilli()
		if stamp <= previous {
			stamp = previous + 1
		}
		if lastAssemblyStamp.CompareAndSwap(previous, stamp) {
			return stamp
		}
	}
}
