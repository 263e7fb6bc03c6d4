package wordpress

import (
	"context"

	"github.com/gold9-app/autopress"
)

// Ensure Client implements autopress.SEOMetaService at compile time.
var _ autopress.SEOMetaService = (*Client)(nil)

// articleSchema is the fixed Article schema template pushed for every post.
// The %token% placeholders are resolved by Rank Math server-side.
var articleSchema = map[string]any{
	"@type": "Article",
	"metadata": map[string]any{
		"title":     "Article",
		"type":      "template",
		"isPrimary": true,
	},
	"headline":      "%seo_title%",
	"description":   "%seo_description%",
	"datePublished": "%date(Y-m-dTH:i:sP)%",
	"dateModified":  "%modified(Y-m-dTH:i:sP)%",
	"author": map[string]any{
		"@type": "Person",
		"name":  "%name%",
	},
}

// UpdateMeta pushes the Rank Math fields for a post.
func (c *Client) UpdateMeta(ctx context.Context, postID int, fields autopress.SEOFields) error {
	mctx, cancel := context.WithTimeout(ctx, DefaultMetaTimeout)
	defer cancel()

	payload := map[string]any{
		"objectType": "post",
		"objectID":   postID,
		"meta": map[string]string{
			"rank_math_title":         fields.SEOTitle,
			"rank_math_description":   fields.Description,
			"rank_math_focus_keyword": fields.FocusKeyword,
			"rank_math_robots":        "index,follow",
		},
	}

	status, err := c.postJSON(mctx, "/wp-json/rankmath/v1/updateMeta", payload, nil)
	if err != nil {
		return autopress.Errorf(autopress.EUNAVAILABLE, "Rank Math meta update failed: %v", err)
	}
	if status != 200 {
		return autopress.Errorf(autopress.EUNAVAILABLE, "Rank Math meta update failed (HTTP %d)", status)
	}
	return nil
}

// UpdateSchema installs the Article schema template for a post.
func (c *Client) UpdateSchema(ctx context.Context, postID int) error {
	sctx, cancel := context.WithTimeout(ctx, DefaultMetaTimeout)
	defer cancel()

	payload := map[string]any{
		"objectType": "post",
		"objectID":   postID,
		"schemas": map[string]any{
			"new-1": articleSchema,
		},
	}

	status, err := c.postJSON(sctx, "/wp-json/rankmath/v1/updateSchemas", payload, nil)
	if err != nil {
		return autopress.Errorf(autopress.EUNAVAILABLE, "Rank Math schema update failed: %v", err)
	}
	if status != 200 {
		return autopress.Errorf(autopress.EUNAVAILABLE, "Rank Math schema update failed (HTTP %d)", status)
	}
	return nil
}
