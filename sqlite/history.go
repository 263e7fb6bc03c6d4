package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gold9-app/autopress"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ autopress.HistoryService = (*HistoryService)(nil)

// HistoryService implements autopress.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateRecord appends a publish record, assigning its ID and timestamp.
func (s *HistoryService) CreateRecord(ctx context.Context, record *autopress.PublishRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.PublishedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO publish_records (id, title, slug, focus_keyword, post_id, url, content_hash, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Title, record.Slug, record.FocusKeyword, record.PostID, record.URL,
		record.ContentHash, record.PublishedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, newest first.
func (s *HistoryService) FindRecords(ctx context.Context, filter autopress.RecordFilter) ([]*autopress.PublishRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, slug, focus_keyword, post_id, url, content_hash, published_at FROM publish_records WHERE 1=1")

	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY published_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*autopress.PublishRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// FindByContent retrieves the most recent record matching the content hash
// of the given draft body. Returns ENOTFOUND when none exists.
func (s *HistoryService) FindByContent(ctx context.Context, content string) (*autopress.PublishRecord, error) {
	hash := autopress.HashContent(content)

	records, err := s.FindRecords(ctx, autopress.RecordFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, autopress.Errorf(autopress.ENOTFOUND, "no publish record for content")
	}
	return records[0], nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*autopress.PublishRecord, error) {
	var record autopress.PublishRecord
	var publishedAt string

	err := row.Scan(&record.ID, &record.Title, &record.Slug, &record.FocusKeyword,
		&record.PostID, &record.URL, &record.ContentHash, &publishedAt)
	if err == sql.ErrNoRows {
		return nil, autopress.Errorf(autopress.ENOTFOUND, "publish record not found")
	}
	if err != nil {
		return nil, err
	}

	record.PublishedAt, err = time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse published_at: %w", err)
	}
	return &record, nil
}
