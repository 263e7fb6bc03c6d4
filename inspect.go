package autopress

// Inspection summarizes a draft body for review listings. It is advisory:
// publishing never depends on it.
type Inspection struct {
	// Headline is the first h1 text, falling back to the document title.
	Headline string `json:"headline,omitempty"`

	// SubheadingCount counts h2 and h3 elements, the ones keyword
	// injection considers.
	SubheadingCount int `json:"subheading_count"`

	// ImageCount counts img elements already present in the draft.
	ImageCount int `json:"image_count"`

	// WordCount counts whitespace-separated words in the visible text.
	WordCount int `json:"word_count"`
}

// Inspector parses draft HTML into a review summary.
type Inspector interface {
	Inspect(html string) (*Inspection, error)
}
