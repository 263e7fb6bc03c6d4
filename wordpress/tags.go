package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gold9-app/autopress"
)

// Ensure Client implements autopress.TagService at compile time.
var _ autopress.TagService = (*Client)(nil)

type tagJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ResolveTagIDs resolves tag names to IDs, creating tags that do not exist.
// A tag whose lookup and creation both fail is omitted and reported as a
// warning; tag resolution never fails the publish.
func (c *Client) ResolveTagIDs(ctx context.Context, names []string) ([]int, []string) {
	var ids []int
	var warnings []string
	for _, name := range names {
		id, err := c.resolveTag(ctx, name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("tag %q skipped: %s", name, autopress.ErrorMessage(err)))
			continue
		}
		ids = append(ids, id)
	}
	return ids, warnings
}

func (c *Client) resolveTag(ctx context.Context, name string) (int, error) {
	sctx, cancel := context.WithTimeout(ctx, DefaultTagTimeout)
	defer cancel()

	var found []tagJSON
	status, err := c.getJSON(sctx, "/wp-json/wp/v2/tags", url.Values{"search": {name}}, &found)
	if err == nil && status == 200 {
		for _, t := range found {
			if strings.EqualFold(t.Name, name) {
				return t.ID, nil
			}
		}
	}

	return c.createTag(ctx, name)
}

func (c *Client) createTag(ctx context.Context, name string) (int, error) {
	cctx, cancel := context.WithTimeout(ctx, DefaultTagTimeout)
	defer cancel()

	var created tagJSON
	status, err := c.postJSON(cctx, "/wp-json/wp/v2/tags", map[string]string{"name": name}, &created)
	if err != nil {
		return 0, autopress.Errorf(autopress.EUNAVAILABLE, "tag creation failed: %v", err)
	}
	if !is2xx(status) {
		return 0, autopress.Errorf(autopress.EUNAVAILABLE, "tag creation failed (HTTP %d)", status)
	}
	return created.ID, nil
}
