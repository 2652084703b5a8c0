package deck

// PageType classifies a slide's role within the deck. The canonical
// vocabulary is the title/toc/chapter/content/conclusion set; the older
// cover/catalog/transition/ending vocabulary is accepted on ingestion and
// mapped onto it.
type PageType string

const (
	PageTitle      PageType = "title"      // Cover slide
	PageTOC        PageType = "toc"        // Table of contents
	PageChapter    PageType = "chapter"    // Section divider, lists its sub-topics
	PageContent    PageType = "content"    // Regular content slide
	PageConclusion PageType = "conclusion" // Summary / thanks
)

// legacyPageTypes maps the earlier schema generation onto the canonical
// vocabulary.
var legacyPageTypes = map[string]PageType{
	"cover":      PageTitle,
	"catalog":    PageTOC,
	"transition": PageChapter,
	"ending":     PageConclusion,
}

// NormalizePageType maps a raw type tag onto the canonical vocabulary.
// Unrecognized or absent values become [PageContent].
func NormalizePageType(raw string) PageType {
	switch PageType(raw) {
	case PageTitle, PageTOC, PageChapter, PageContent, PageConclusion:
		return PageType(raw)
	}
	if mapped, ok := legacyPageTypes[raw]; ok {
		return mapped
	}
	return PageContent
}

// ImageType is a coarse visual classification used as an alternative to a
// free-text visual prompt.
type ImageType string

const (
	ImageFlow         ImageType = "flow"         // Flow diagram
	ImageLogic        ImageType = "logic"        // Logic/relationship diagram
	ImageIllustration ImageType = "illustration" // Illustration
	ImageCustom       ImageType = "custom"       // Caller-defined
)

// NormalizeImageType validates a raw image-type tag. Unrecognized values are
// dropped (empty result) rather than coerced, because a wrong classification
// is worse than none.
func NormalizeImageType(raw string) ImageType {
	switch ImageType(raw) {
	case ImageFlow, ImageLogic, ImageIllustration, ImageCustom:
		return ImageType(raw)
	}
	return ""
}

// Page is one slide's editable content.
type Page struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"` // Newline-joined, never a nested list
	Type    PageType `json:"type,omitempty"`

	// Visual is a free-text image prompt for the page. VisualEnabled records
	// whether the suggestion applies; nil means unset and is read as true.
	Visual        string    `json:"visual,omitempty"`
	VisualEnabled *bool     `json:"visualEnabled,omitempty"`
	ImageType     ImageType `json:"imageType,omitempty"`
}

// VisualApplies reports whether the page's visual suggestion is in effect.
// An unset VisualEnabled defaults to true.
func (p Page) VisualApplies() bool {
	return p.VisualEnabled == nil || *p.VisualEnabled
}

// ColorScheme is a named 60/30/10 palette suggestion. Secondary is an ordered
// pair: index 0 is the dominant background color, index 1 the accent.
type ColorScheme struct {
	Name        string   `json:"name"`
	Primary     string   `json:"primary"` // Hex, e.g. "#1C1C1E"
	Secondary   []string `json:"secondary"`
	Description string   `json:"description,omitempty"`
}

// Background returns the dominant background hex of the scheme, or "" when
// the secondary pair is incomplete.
func (cs ColorScheme) Background() string {
	if len(cs.Secondary) > 0 {
		return cs.Secondary[0]
	}
	return ""
}

// Accent returns the accent hex of the scheme, or "" when the secondary pair
// is incomplete.
func (cs ColorScheme) Accent() string {
	if len(cs.Secondary) > 1 {
		return cs.Secondary[1]
	}
	return ""
}

// NamedColor pairs a human-readable color name with its hex value.
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DesignStyle describes the recommended visual style of a design system.
type DesignStyle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// DesignColors holds the palette of a design system.
type DesignColors struct {
	Primary    NamedColor   `json:"primary"`
	Secondary  []NamedColor `json:"secondary"`
	Background *NamedColor  `json:"background,omitempty"`
}

// DesignFonts recommends a title and body font pairing.
type DesignFonts struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DesignSystem is the legacy full design payload produced by the auxiliary
// design call. It coexists with ColorSchemes without a consistency guarantee.
type DesignSystem struct {
	Style  DesignStyle  `json:"style"`
	Colors DesignColors `json:"colors"`
	Fonts  DesignFonts  `json:"fonts"`
}

// Deck is the aggregate root: the full structured presentation outline.
type Deck struct {
	Topic               string        `json:"topic"`
	Pages               []Page        `json:"pages"`
	ColorSchemes        []ColorScheme `json:"colorSchemes,omitempty"`
	SelectedColorScheme *ColorScheme  `json:"selectedColorScheme,omitempty"`
	Design              *DesignSystem `json:"design,omitempty"`
}

// Clone returns a deep copy of the deck. Mutation operations work on clones
// so that a Deck already observed by a reader is never modified in place.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}

	clone := &Deck{
		Topic: d.Topic,
		Pages: make([]Page, len(d.Pages)),
	}
	copy(clone.Pages, d.Pages)
	for i := range clone.Pages {
		if enabled := d.Pages[i].VisualEnabled; enabled != nil {
			value := *enabled
			clone.Pages[i].VisualEnabled = &value
		}
	}

	if d.ColorSchemes != nil {
		clone.ColorSchemes = make([]ColorScheme, len(d.ColorSchemes))
		copy(clone.ColorSchemes, d.ColorSchemes)
	}
	if d.SelectedColorScheme != nil {
		selected := *d.SelectedColorScheme
		clone.SelectedColorScheme = &selected
	}
	if d.Design != nil {
		design := *d.Design
		clone.Design = &design
	}

	return clone
}

// PageByID returns the page with the given id and its index, or ok=false
// when no page carries that id.
func (d *Deck) PageByID(id string) (Page, int, bool) {
	if d == nil {
		return Page{}, -1, false
	}
	for i, page := range d.Pages {
		if page.ID == id {
			return page, i, true
		}
	}
	return Page{}, -1, false
}

// MergeDesign installs the auxiliary design payload. The design call is the
// authoritative source for this key, so an existing value is overwritten.
func (d *Deck) MergeDesign(design *DesignSystem) {
	d.Design = design
}

// MergeColorSchemes appends auxiliary scheme suggestions without overwriting
// schemes already present from the primary payload. Duplicate names are
// skipped.
func (d *Deck) MergeColorSchemes(schemes []ColorScheme) {
	existing := make(map[string]bool, len(d.ColorSchemes))
	for _, scheme := range d.ColorSchemes {
		existing[scheme.Name] = true
	}
	for _, scheme := range schemes {
		if existing[scheme.Name] {
			continue
		}
		d.ColorSchemes = append(d.ColorSchemes, scheme)
		existing[scheme.Name] = true
	}
}
