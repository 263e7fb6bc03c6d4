package goquery_test

import (
	"testing"

	"github.com/gold9-app/autopress/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("counts structure and picks the h1 headline", func(t *testing.T) {
		t.Parallel()

		html := `<h1>계란 상식</h1>
			<h2>서론</h2><p>계란은 좋은 식품입니다.</p>
			<h3>영양</h3><p>단백질이 풍부합니다.</p>
			<img src="egg.jpg" alt="계란" />`

		insp, err := goquery.NewInspector().Inspect(html)
		require.NoError(t, err)

		assert.Equal(t, "계란 상식", insp.Headline)
		assert.Equal(t, 2, insp.SubheadingCount)
		assert.Equal(t, 1, insp.ImageCount)
		assert.Positive(t, insp.WordCount)
	})

	t.Run("falls back to the title element", func(t *testing.T) {
		t.Parallel()

		insp, err := goquery.NewInspector().Inspect("<title>계란</title><p>본문</p>")
		require.NoError(t, err)

		assert.Equal(t, "계란", insp.Headline)
	})

	t.Run("fragment without headings", func(t *testing.T) {
		t.Parallel()

		insp, err := goquery.NewInspector().Inspect("<p>본문만 있습니다.</p>")
		require.NoError(t, err)

		assert.Empty(t, insp.Headline)
		assert.Zero(t, insp.SubheadingCount)
	})
}
