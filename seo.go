package autopress

import "strings"

// SEOFields is the set of Rank Math fields derived for one post. Fields are
// a total function of (title, content, override): no state carries over
// between publishes.
type SEOFields struct {
	FocusKeyword string   `json:"focus_keyword"`
	SEOTitle     string   `json:"seo_title"`
	Description  string   `json:"description"`
	Slug         string   `json:"slug"`
	Tags         []string `json:"tags"`
}

// BuildSEOFields derives the SEO fields for a post. Overrides in meta win
// field by field; everything else is computed from title and content.
//
// The description takes the first 300 characters of tag-stripped content,
// collapses newlines, and prefers ending at the last sentence period found
// past position 50 within the first 140 characters, falling back to a hard
// 140-character cut. The focus keyword is prepended when absent, and the
// final value is capped at 155 characters (152 + ellipsis).
func BuildSEOFields(title, htmlContent, siteName string, meta MetaOverride) SEOFields {
	focusKeyword := meta.FocusKeyword
	if focusKeyword == "" {
		focusKeyword = ExtractFocusKeyword(title)
	}

	plainText := StripHTML(htmlContent)

	seoTitle := meta.SEOTitle
	if seoTitle == "" {
		if containsFold(title, focusKeyword) {
			seoTitle = title + " - " + siteName
		} else {
			seoTitle = title + " | " + focusKeyword + " - " + siteName
		}
	}

	description := meta.Description
	if description == "" {
		description = deriveDescription(plainText, focusKeyword)
	}
	if r := []rune(description); len(r) > 155 {
		description = string(r[:152]) + "..."
	}

	slug := meta.Slug
	if slug == "" {
		slug = Slugify(focusKeyword)
	}

	return SEOFields{
		FocusKeyword: focusKeyword,
		SEOTitle:     seoTitle,
		Description:  description,
		Slug:         slug,
		Tags:         meta.Tags,
	}
}

func deriveDescription(plainText, focusKeyword string) string {
	descText := strings.TrimSpace(strings.ReplaceAll(headRunes(plainText, 300), "\n", " "))

	r := []rune(descText)
	window := r
	if len(window) > 140 {
		window = window[:140]
	}

	lastPeriod := -1
	for i, c := range window {
		if c == '.' {
			lastPeriod = i
		}
	}

	var description string
	if lastPeriod > 50 {
		description = string(r[:lastPeriod+1])
	} else {
		description = string(window)
	}

	if !containsFold(description, focusKeyword) {
		description = focusKeyword + " - " + description
	}
	return description
}
