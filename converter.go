package autopress

// Converter converts HTML to Markdown for draft previews.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
