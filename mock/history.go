package mock

import (
	"context"

	"github.com/gold9-app/autopress"
)

var _ autopress.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of autopress.HistoryService.
type HistoryService struct {
	CreateRecordFn  func(ctx context.Context, record *autopress.PublishRecord) error
	FindRecordsFn   func(ctx context.Context, filter autopress.RecordFilter) ([]*autopress.PublishRecord, error)
	FindByContentFn func(ctx context.Context, content string) (*autopress.PublishRecord, error)
}

func (s *HistoryService) CreateRecord(ctx context.Context, record *autopress.PublishRecord) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *HistoryService) FindRecords(ctx context.Context, filter autopress.RecordFilter) ([]*autopress.PublishRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *HistoryService) FindByContent(ctx context.Context, content string) (*autopress.PublishRecord, error) {
	return s.FindByContentFn(ctx, content)
}
