package mock

import (
	"context"

	"github.com/gold9-app/autopress"
)

var _ autopress.Generator = (*Generator)(nil)

// Generator is a mock implementation of autopress.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, topic string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, topic string) (string, error) {
	return g.GenerateFn(ctx, topic)
}
