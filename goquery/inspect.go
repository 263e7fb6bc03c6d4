// Package goquery implements draft HTML inspection for the review UI.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gold9-app/autopress"
)

// Ensure Inspector implements autopress.Inspector at compile time.
var _ autopress.Inspector = (*Inspector)(nil)

// Inspector summarizes draft HTML using CSS selectors.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses draft HTML and returns its review summary.
func (i *Inspector) Inspect(html string) (*autopress.Inspection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, autopress.Errorf(autopress.EINVALID, "failed to parse HTML: %v", err)
	}

	insp := &autopress.Inspection{
		SubheadingCount: doc.Find("h2, h3").Length(),
		ImageCount:      doc.Find("img").Length(),
		WordCount:       len(strings.Fields(doc.Find("body").Text())),
	}

	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		insp.Headline = strings.TrimSpace(h1.Text())
	} else if title := doc.Find("title").First(); title.Length() > 0 {
		insp.Headline = strings.TrimSpace(title.Text())
	}

	return insp, nil
}
