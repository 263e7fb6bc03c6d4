package autopress

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// HashContent computes the xxHash of a draft body as a hex string. Records
// with equal hashes published the same content.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// PublishRecord is an append-only record of one successful publish. The
// content hash identifies the draft body so batch runs can warn before
// publishing the same content twice. History is never an input to SEO
// derivation.
type PublishRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	FocusKeyword string    `json:"focusKeyword"`
	PostID       int       `json:"postId"`
	URL          string    `json:"url"`
	ContentHash  string    `json:"contentHash"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PublishRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.PostID == 0 {
		return Errorf(EINVALID, "record post ID required")
	}
	return nil
}

// RecordFilter selects publish records.
type RecordFilter struct {
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService stores and retrieves publish records.
type HistoryService interface {
	// CreateRecord appends a record. The ID and timestamp are assigned by
	// the implementation; the caller supplies the content hash.
	CreateRecord(ctx context.Context, record *PublishRecord) error

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*PublishRecord, error)

	// FindByContent retrieves the most recent record whose content hash
	// matches the given draft body. Returns ENOTFOUND when none exists.
	FindByContent(ctx context.Context, content string) (*PublishRecord, error)
}
