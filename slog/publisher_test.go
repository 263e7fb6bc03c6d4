package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/mock"
	apslog "github.com/gold9-app/autopress/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingPublisher(t *testing.T) {
	t.Parallel()

	req := &autopress.PublishRequest{
		Draft: &autopress.Draft{Title: "계란 상식"},
	}

	t.Run("logs success with warnings", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		next := &mock.Publisher{
			PublishFn: func(_ context.Context, _ *autopress.PublishRequest) (*autopress.Receipt, error) {
				return &autopress.Receipt{
					PostID:   123,
					Step:     autopress.StepDone,
					Warnings: []string{"rank math meta: HTTP 500"},
				}, nil
			},
		}

		rcpt, err := apslog.NewLoggingPublisher(next, logger).Publish(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 123, rcpt.PostID)
		assert.Contains(t, buf.String(), "publish complete")
		assert.Contains(t, buf.String(), "publish warning")
	})

	t.Run("logs failure with the reached step", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		next := &mock.Publisher{
			PublishFn: func(_ context.Context, _ *autopress.PublishRequest) (*autopress.Receipt, error) {
				return &autopress.Receipt{Step: autopress.StepUploadFailed},
					autopress.Errorf(autopress.EUNAVAILABLE, "image upload failed")
			},
		}

		_, err := apslog.NewLoggingPublisher(next, logger).Publish(context.Background(), req)
		require.Error(t, err)

		assert.Contains(t, buf.String(), "publish failed")
		assert.Contains(t, buf.String(), "upload_failed")
	})
}

func TestLoggingGenerator(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	next := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			return "<p>본문</p>", nil
		},
	}

	html, err := apslog.NewLoggingGenerator(next, logger).Generate(context.Background(), "계란")
	require.NoError(t, err)

	assert.Equal(t, "<p>본문</p>", html)
	assert.Contains(t, buf.String(), "generate complete")
}
