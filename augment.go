package autopress

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	subheadingRE = regexp.MustCompile(`(?is)<h[23][^>]*>(.*?)</h[23]>`)
	firstH2RE    = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
)

// AuthorLinkPolicy decides which link paragraph a given author's posts
// receive. Registering an author ID with a profile URL makes every post by
// that author link back to the profile.
type AuthorLinkPolicy struct {
	ProfileURL string
	Label      string
}

// AugmentOptions carries the per-publish inputs of the augmentation pipeline.
type AugmentOptions struct {
	// AuthorID selects the author link policy.
	AuthorID int

	// ImageURL is the uploaded featured image; empty skips image injection.
	ImageURL string

	// InternalLink, when set, is appended as a related-post paragraph.
	InternalLink string

	// ExternalLink is injected for authors without a registered policy.
	ExternalLink string
}

// Augmenter rewrites draft HTML so the focus keyword lands where Rank Math
// scores it: the opening content, a subheading, and an image alt text.
// Every step is a pure string transform; malformed HTML is handled
// best-effort and never causes a failure.
type Augmenter struct {
	// AuthorLinks maps author IDs to their link policy. Authors absent from
	// the table fall back to the caller-supplied external link.
	AuthorLinks map[int]AuthorLinkPolicy
}

// NewAugmenter builds an Augmenter from site configuration. The primary
// author gets a fixed profile-link policy; new authors are added by
// extending the table.
func NewAugmenter(cfg *Config) *Augmenter {
	links := map[int]AuthorLinkPolicy{}
	if cfg.PrimaryAuthorID != 0 {
		links[cfg.PrimaryAuthorID] = AuthorLinkPolicy{
			ProfileURL: cfg.AuthorProfileURL,
			Label:      cfg.AuthorProfileLabel,
		}
	}
	return &Augmenter{AuthorLinks: links}
}

// Augment runs the full pipeline in its fixed order and wraps the result in
// a raw-HTML block for the WordPress renderer.
func (a *Augmenter) Augment(html, focusKeyword string, opts AugmentOptions) string {
	html = EnsureKeywordInContent(html, focusKeyword)
	html = EnsureKeywordInSubheading(html, focusKeyword)
	if opts.ImageURL != "" {
		html = InjectKeywordImage(html, focusKeyword, opts.ImageURL)
	}
	if opts.InternalLink != "" {
		html = InjectInternalLink(html, opts.InternalLink)
	}
	html = a.InjectAuthorLink(html, opts.AuthorID, opts.ExternalLink)
	return WrapHTMLBlock(html)
}

// EnsureKeywordInContent prepends a one-sentence keyword paragraph when the
// keyword does not appear in the tag-stripped first 500 characters.
func EnsureKeywordInContent(html, focusKeyword string) string {
	plainStart := StripHTML(headRunes(html, 500))
	if containsFold(plainStart, focusKeyword) {
		return html
	}
	return fmt.Sprintf("<p>%s에 대해 알아보겠습니다.</p>\n", focusKeyword) + html
}

// EnsureKeywordInSubheading guarantees at least one h2/h3 contains the
// keyword. When none does, the keyword is injected into the inner text of
// the first h2 only; documents without an h2 are left untouched.
func EnsureKeywordInSubheading(html, focusKeyword string) string {
	for _, m := range subheadingRE.FindAllStringSubmatch(html, -1) {
		if containsFold(StripHTML(m[1]), focusKeyword) {
			return html
		}
	}

	loc := firstH2RE.FindStringSubmatchIndex(html)
	if loc == nil {
		return html
	}
	whole := html[loc[0]:loc[1]]
	inner := html[loc[2]:loc[3]]
	replaced := strings.Replace(whole, inner, focusKeyword+" - "+inner, 1)
	return html[:loc[0]] + replaced + html[loc[1]:]
}

// InjectKeywordImage inserts an image with the keyword as alt text right
// after the first closing tag, or prepends it when the document has none.
func InjectKeywordImage(html, focusKeyword, imageURL string) string {
	imgTag := fmt.Sprintf(`<img src="%s" alt="%s" style="width:100%%; height:auto;" />`, imageURL, focusKeyword)

	if loc := firstCloseRE.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + "\n" + imgTag + "\n" + html[loc[1]:]
	}
	return imgTag + "\n" + html
}

// InjectInternalLink appends a related-post paragraph pointing at url.
func InjectInternalLink(html, url string) string {
	if url == "" || strings.Contains(html, url) {
		return html
	}
	link := fmt.Sprintf(`<p>관련 글: <a href="%s">%s</a></p>`, url, url)
	return html + "\n" + link
}

// InjectAuthorLink appends the author's link paragraph. Registered authors
// get their profile link (skipped when the URL is empty or already present
// anywhere in the content, so re-running is a no-op); unregistered authors
// get the caller-supplied external link, or nothing.
func (a *Augmenter) InjectAuthorLink(html string, authorID int, externalLink string) string {
	if policy, ok := a.AuthorLinks[authorID]; ok {
		if policy.ProfileURL == "" || strings.Contains(html, policy.ProfileURL) {
			return html
		}
		label := policy.Label
		if label == "" {
			label = policy.ProfileURL
		}
		link := fmt.Sprintf(`<p>더 많은 정보는 <a href="%s" target="_blank">%s</a>에서 확인하세요.</p>`, policy.ProfileURL, label)
		return html + "\n" + link
	}

	if externalLink == "" || strings.Contains(html, externalLink) {
		return html
	}
	link := fmt.Sprintf(`<p>더 자세한 내용은 <a href="%s" target="_blank">%s</a>에서 확인할 수 있습니다.</p>`, externalLink, externalLink)
	return html + "\n" + link
}

// WrapHTMLBlock wraps content in the marker comments that tell the
// WordPress block renderer to treat it as a raw HTML block.
func WrapHTMLBlock(html string) string {
	return "<!-- wp:html -->\n" + html + "\n<!-- /wp:html -->"
}
