package autopress

import "context"

// Draft is a pre-authored post awaiting publication. Drafts are ephemeral:
// they exist only for the duration of one publish operation and are never
// persisted by this package.
type Draft struct {
	// Title becomes the post title and feeds focus keyword extraction.
	Title string

	// HTML is the authored post body (UTF-8, decoded by the loader).
	HTML string

	// Featured image bytes and the original filename (used for MIME type
	// guessing; the upload filename is ASCII-sanitized by the client).
	ImageName string
	ImageData []byte

	// Meta carries optional manual overrides from meta.json.
	Meta MetaOverride
}

// Validate returns an error if the draft is missing required parts.
func (d *Draft) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "draft title required")
	}
	if d.HTML == "" {
		return Errorf(EINVALID, "draft HTML content required")
	}
	if len(d.ImageData) == 0 {
		return Errorf(EINVALID, "draft image required")
	}
	return nil
}

// DraftStore lists and loads draft folders.
type DraftStore interface {
	// List returns one DraftInfo per folder, sorted by name.
	List(ctx context.Context) ([]*DraftInfo, error)

	// Load reads a complete draft. Returns ENOTFOUND for a missing folder
	// and EINVALID for count or decode failures.
	Load(name string) (*Draft, error)

	// SaveHTML creates a draft folder holding only the HTML body, for
	// generated articles awaiting an image.
	SaveHTML(name, html string) error
}

// MetaOverride holds per-draft manual SEO overrides. Every field wins over
// the derived value when non-empty.
type MetaOverride struct {
	FocusKeyword string   `json:"focus_keyword"`
	SEOTitle     string   `json:"seo_title"`
	Description  string   `json:"description"`
	Slug         string   `json:"slug"`
	Tags         []string `json:"tags"`
}

// DraftInfo describes one draft folder for review listings. Invalid folders
// carry count-based error messages and are skipped by batch publishing.
type DraftInfo struct {
	// Name is the folder name, which doubles as the post title.
	Name string `json:"name"`

	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`

	HTMLFile  string `json:"html,omitempty"`
	ImageFile string `json:"image,omitempty"`
	HasMeta   bool   `json:"has_meta"`

	// FocusKeyword is the keyword that would be derived from the title.
	FocusKeyword string `json:"focus_keyword"`
}
