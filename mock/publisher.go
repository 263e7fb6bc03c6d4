package mock

import (
	"context"

	"github.com/gold9-app/autopress"
)

var _ autopress.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of autopress.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, req *autopress.PublishRequest) (*autopress.Receipt, error)
}

func (p *Publisher) Publish(ctx context.Context, req *autopress.PublishRequest) (*autopress.Receipt, error) {
	return p.PublishFn(ctx, req)
}
