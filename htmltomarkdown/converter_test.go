package htmltomarkdown_test

import (
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()

		md, err := conv.Convert("<h2>서론</h2><p>계란은 <strong>좋은</strong> 식품입니다.</p>")
		require.NoError(t, err)

		assert.Contains(t, md, "## 서론")
		assert.Contains(t, md, "**좋은**")
	})

	t.Run("strips wordpress block markers and trims", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		wrapped := autopress.WrapHTMLBlock("<p>본문입니다.</p>")

		md, err := conv.Convert(wrapped)
		require.NoError(t, err)

		assert.Equal(t, "본문입니다.", md)
		assert.NotContains(t, md, "wp:html")
	})

	t.Run("input that is only block markers is invalid", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()

		_, err := conv.Convert("<!-- wp:html -->\n<!-- /wp:html -->")
		require.Error(t, err)
		assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()

		_, err := conv.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
	})
}
