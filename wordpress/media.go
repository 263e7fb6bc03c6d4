package wordpress

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gold9-app/autopress"
)

// Ensure Client implements autopress.MediaService at compile time.
var _ autopress.MediaService = (*Client)(nil)

// UploadImage uploads raw image bytes to the media library. The filename on
// the wire is ASCII-sanitized because WordPress media ingestion rejects
// non-ASCII Content-Disposition filenames. A non-2xx response returns
// EUNAVAILABLE; the alt-text follow-up is best-effort and unreported.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte, altText string) (*autopress.Media, error) {
	uctx, cancel := context.WithTimeout(ctx, DefaultMediaTimeout)
	defer cancel()

	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	header := http.Header{
		"Content-Disposition": {fmt.Sprintf(`attachment; filename="%s"`, asciiFilename(filename))},
		"Content-Type":        {mimeType},
	}

	status, body, err := c.do(uctx, http.MethodPost, "/wp-json/wp/v2/media", nil, bytes.NewReader(data), header)
	if err != nil {
		return nil, autopress.Errorf(autopress.EUNAVAILABLE, "image upload failed: %v", err)
	}
	if !is2xx(status) {
		return nil, autopress.Errorf(autopress.EUNAVAILABLE, "image upload failed (HTTP %d)", status)
	}

	var media autopress.Media
	if err := unmarshalBody(body, &media); err != nil {
		return nil, autopress.Errorf(autopress.EUNAVAILABLE, "image upload failed: %v", err)
	}

	if altText != "" {
		c.setAltText(ctx, media.ID, altText)
	}
	return &media, nil
}

// setAltText applies the alt text to an uploaded media item. Failure here
// is deliberately swallowed: the image itself is already in place.
func (c *Client) setAltText(ctx context.Context, mediaID int, altText string) {
	actx, cancel := context.WithTimeout(ctx, DefaultAltTimeout)
	defer cancel()

	_, _ = c.postJSON(actx, fmt.Sprintf("/wp-json/wp/v2/media/%d", mediaID),
		map[string]string{"alt_text": altText}, nil)
}

// asciiFilename keeps ASCII-only filenames and replaces everything else
// with a generic placeholder that preserves the extension.
func asciiFilename(filename string) string {
	for _, r := range filename {
		if r > 127 {
			return "image" + filepath.Ext(filename)
		}
	}
	return filename
}
