package gemini_test

import (
	"context"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain output passes through",
			text: "<h2>제목</h2><p>본문</p>",
			want: "<h2>제목</h2><p>본문</p>",
		},
		{
			name: "html fence is stripped",
			text: "```html\n<h2>제목</h2>\n```",
			want: "<h2>제목</h2>",
		},
		{
			name: "bare fence is stripped",
			text: "```\n<p>본문</p>\n```",
			want: "<p>본문</p>",
		},
		{
			name: "surrounding whitespace is trimmed",
			text: "\n\n  <p>본문</p>  \n",
			want: "<p>본문</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.StripCodeFence(tt.text))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Topic: 계란 상식", gemini.BuildUserPrompt("계란 상식"))
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg := gemini.BuildConfig()

	require.NotNil(t, cfg.SystemInstruction)
	require.NotEmpty(t, cfg.SystemInstruction.Parts)
	assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "seven-section")
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.7, float64(*cfg.Temperature), 0.001)
}

func TestGenerator_Generate_EmptyTopic(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator(nil, "")

	_, err := g.Generate(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
}
