package wordpress

import (
	"context"
	"fmt"

	"github.com/gold9-app/autopress"
)

// Ensure Client implements autopress.PostService at compile time.
var _ autopress.PostService = (*Client)(nil)

// CreatePost submits a new post. Any non-2xx response is fatal for the
// publish operation; already-uploaded media is left in place.
func (c *Client) CreatePost(ctx context.Context, post *autopress.NewPost) (*autopress.Post, error) {
	pctx, cancel := context.WithTimeout(ctx, DefaultPostTimeout)
	defer cancel()

	var created autopress.Post
	status, err := c.postJSON(pctx, "/wp-json/wp/v2/posts", post, &created)
	if err != nil {
		return nil, autopress.Errorf(autopress.EUNAVAILABLE, "post creation failed: %v", err)
	}
	if !is2xx(status) {
		return nil, autopress.Errorf(autopress.EUNAVAILABLE, "post creation failed (HTTP %d)", status)
	}
	return &created, nil
}

// PingPost re-saves an existing post so the SEO plugin re-indexes it.
func (c *Client) PingPost(ctx context.Context, postID int) error {
	pctx, cancel := context.WithTimeout(ctx, DefaultMetaTimeout)
	defer cancel()

	status, err := c.postJSON(pctx, fmt.Sprintf("/wp-json/wp/v2/posts/%d", postID), map[string]any{}, nil)
	if err != nil {
		return autopress.Errorf(autopress.EUNAVAILABLE, "post re-save failed: %v", err)
	}
	if !is2xx(status) {
		return autopress.Errorf(autopress.EUNAVAILABLE, "post re-save failed (HTTP %d)", status)
	}
	return nil
}
