package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gold9-app/autopress"
)

// Ensure LoggingGenerator implements autopress.Generator at compile time.
var _ autopress.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with timing and outcome logging.
type LoggingGenerator struct {
	next   autopress.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next autopress.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped Generator and logs the outcome.
func (g *LoggingGenerator) Generate(ctx context.Context, topic string) (string, error) {
	begin := time.Now()
	html, err := g.next.Generate(ctx, topic)
	duration := time.Since(begin)

	if err != nil {
		g.logger.Error("generate failed", "topic", topic, "duration", duration, "err", autopress.ErrorMessage(err))
		return "", err
	}

	g.logger.Info("generate complete", "topic", topic, "bytes", len(html), "duration", duration)
	return html, nil
}
