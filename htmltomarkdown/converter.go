// Package htmltomarkdown renders draft HTML as Markdown for the review UI.
// Reviewers read the Markdown form to check an article before publishing;
// nothing downstream consumes it.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gold9-app/autopress"
)

// blockMarkerRE matches the WordPress raw-HTML block comments so previews
// of already-augmented content read as plain prose.
var blockMarkerRE = regexp.MustCompile(`<!--\s*/?wp:[^>]*-->`)

// Ensure Converter implements autopress.Converter at compile time.
var _ autopress.Converter = (*Converter)(nil)

// Converter renders draft previews through html-to-markdown. Table support
// is enabled because generated articles occasionally include comparison
// tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates the preview converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders draft HTML as trimmed Markdown. WordPress block markers
// are stripped first; input that is empty after stripping is EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	html = blockMarkerRE.ReplaceAllString(html, "")
	if strings.TrimSpace(html) == "" {
		return "", autopress.Errorf(autopress.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
