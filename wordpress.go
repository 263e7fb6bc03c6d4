package autopress

import "context"

// Media is an uploaded image on the remote site.
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// NewPost is the payload for creating a post.
type NewPost struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Slug          string `json:"slug"`
	FeaturedMedia int    `json:"featured_media"`
	Categories    []int  `json:"categories"`
	Author        int    `json:"author"`
	Tags          []int  `json:"tags,omitempty"`
}

// Post identifies a created post. The remote site owns the post after
// creation; this system only issues bounded metadata updates against it.
type Post struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// TagService resolves tag names to remote tag IDs, creating missing tags.
type TagService interface {
	// ResolveTagIDs looks up each name case-insensitively and creates tags
	// that do not exist. Tag resolution is best-effort by contract: a tag
	// whose lookup and creation both fail is omitted from the result and
	// reported as a warning instead of failing the publish.
	ResolveTagIDs(ctx context.Context, names []string) (ids []int, warnings []string)
}

// MediaService uploads images to the remote media library.
type MediaService interface {
	// UploadImage uploads raw image bytes and returns the created media.
	// The alt text, when set, is applied with a best-effort follow-up call
	// whose failure is not reported. A non-2xx upload returns EUNAVAILABLE.
	UploadImage(ctx context.Context, filename string, data []byte, altText string) (*Media, error)
}

// PostService creates posts on the remote site.
type PostService interface {
	// CreatePost submits a new post. Any non-2xx response is fatal for the
	// publish operation and returns EUNAVAILABLE.
	CreatePost(ctx context.Context, post *NewPost) (*Post, error)

	// PingPost re-saves an existing post to force the SEO plugin to
	// re-index it. Best-effort.
	PingPost(ctx context.Context, postID int) error
}

// SEOMetaService pushes SEO metadata to the Rank Math plugin endpoints.
// Both calls run only after successful post creation and are individually
// non-fatal on failure.
type SEOMetaService interface {
	// UpdateMeta pushes title, description, focus keyword, and robots
	// directives for the post.
	UpdateMeta(ctx context.Context, postID int, fields SEOFields) error

	// UpdateSchema installs the Article schema template for the post.
	// Placeholder tokens in the template are resolved server-side.
	UpdateSchema(ctx context.Context, postID int) error
}
