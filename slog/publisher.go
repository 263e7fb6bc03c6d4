// Package slog provides logging decorators for autopress services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gold9-app/autopress"
)

// Ensure LoggingPublisher implements autopress.Publisher at compile time.
var _ autopress.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with structured logging of each
// publish outcome, including best-effort warnings.
type LoggingPublisher struct {
	next   autopress.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next autopress.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped Publisher and logs the outcome.
func (p *LoggingPublisher) Publish(ctx context.Context, req *autopress.PublishRequest) (*autopress.Receipt, error) {
	begin := time.Now()
	rcpt, err := p.next.Publish(ctx, req)
	duration := time.Since(begin)

	if err != nil {
		step := autopress.Step("")
		if rcpt != nil {
			step = rcpt.Step
		}
		p.logger.Error("publish failed",
			"title", req.Draft.Title,
			"step", string(step),
			"duration", duration,
			"err", autopress.ErrorMessage(err),
		)
		return rcpt, err
	}

	p.logger.Info("publish complete",
		"title", req.Draft.Title,
		"post_id", rcpt.PostID,
		"url", rcpt.URL,
		"focus_keyword", rcpt.SEO.FocusKeyword,
		"duration", duration,
	)
	for _, w := range rcpt.Warnings {
		p.logger.Warn("publish warning", "title", req.Draft.Title, "warning", w)
	}
	return rcpt, nil
}
