package autopress

import "context"

// Generator produces a complete article body in HTML for a given topic.
type Generator interface {
	// Generate returns article HTML following the site's seven-section
	// structure. Enclosing code fences in the model output are stripped.
	Generate(ctx context.Context, topic string) (string, error)
}
