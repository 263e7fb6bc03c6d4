package autopress_test

import (
	"strings"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/stretchr/testify/assert"
)

func TestEnsureKeywordInContent(t *testing.T) {
	t.Parallel()

	t.Run("unchanged when keyword appears in the opening content", func(t *testing.T) {
		t.Parallel()

		html := "<p>계란은 좋은 식품입니다.</p>"
		assert.Equal(t, html, autopress.EnsureKeywordInContent(html, "계란"))
	})

	t.Run("prepends a keyword paragraph when absent", func(t *testing.T) {
		t.Parallel()

		html := "<p>본문에는 주제어가 없습니다.</p>"
		got := autopress.EnsureKeywordInContent(html, "계란")

		assert.Equal(t, "<p>계란에 대해 알아보겠습니다.</p>\n"+html, got)
	})

	t.Run("ignores keyword occurrences inside tags", func(t *testing.T) {
		t.Parallel()

		html := `<img src="계란.jpg" /><p>다른 내용</p>`
		got := autopress.EnsureKeywordInContent(html, "계란")

		assert.True(t, strings.HasPrefix(got, "<p>계란에 대해 알아보겠습니다.</p>\n"))
	})

	t.Run("keyword past the first 500 characters does not count", func(t *testing.T) {
		t.Parallel()

		html := "<p>" + strings.Repeat("가", 600) + "계란</p>"
		got := autopress.EnsureKeywordInContent(html, "계란")

		assert.True(t, strings.HasPrefix(got, "<p>계란에 대해 알아보겠습니다.</p>\n"))
	})
}

func TestEnsureKeywordInSubheading(t *testing.T) {
	t.Parallel()

	t.Run("unchanged when any h2 or h3 already has the keyword", func(t *testing.T) {
		t.Parallel()

		html := "<h2>서론</h2><h3>계란의 영양</h3><p>본문</p>"
		assert.Equal(t, html, autopress.EnsureKeywordInSubheading(html, "계란"))
	})

	t.Run("injects into the first h2 only", func(t *testing.T) {
		t.Parallel()

		html := "<h2>서론</h2><p>본문</p><h2>결론</h2>"
		got := autopress.EnsureKeywordInSubheading(html, "계란")

		assert.Equal(t, "<h2>계란 - 서론</h2><p>본문</p><h2>결론</h2>", got)
	})

	t.Run("documents without an h2 are left untouched", func(t *testing.T) {
		t.Parallel()

		html := "<h3>소제목</h3><p>본문</p>"
		assert.Equal(t, html, autopress.EnsureKeywordInSubheading(html, "계란"))
	})

	t.Run("preserves h2 attributes", func(t *testing.T) {
		t.Parallel()

		html := `<h2 class="intro">서론</h2>`
		got := autopress.EnsureKeywordInSubheading(html, "계란")

		assert.Equal(t, `<h2 class="intro">계란 - 서론</h2>`, got)
	})
}

func TestInjectKeywordImage(t *testing.T) {
	t.Parallel()

	t.Run("inserts after the first closing tag", func(t *testing.T) {
		t.Parallel()

		got := autopress.InjectKeywordImage("<h1>제목</h1><p>본문</p>", "계란", "https://example.com/egg.jpg")

		assert.Equal(t, "<h1>제목</h1>\n"+
			`<img src="https://example.com/egg.jpg" alt="계란" style="width:100%; height:auto;" />`+
			"\n<p>본문</p>", got)
	})

	t.Run("prepends when the document has no closing tag", func(t *testing.T) {
		t.Parallel()

		got := autopress.InjectKeywordImage("plain text", "계란", "https://example.com/egg.jpg")

		assert.True(t, strings.HasPrefix(got, `<img src="https://example.com/egg.jpg" alt="계란"`))
		assert.True(t, strings.HasSuffix(got, "plain text"))
	})
}

func TestInjectInternalLink(t *testing.T) {
	t.Parallel()

	t.Run("appends a related post paragraph", func(t *testing.T) {
		t.Parallel()

		got := autopress.InjectInternalLink("<p>본문</p>", "https://blog.example.com/other")

		assert.Contains(t, got, `<a href="https://blog.example.com/other">`)
	})

	t.Run("skips when the URL is already present", func(t *testing.T) {
		t.Parallel()

		html := `<p>see <a href="https://blog.example.com/other">this</a></p>`
		assert.Equal(t, html, autopress.InjectInternalLink(html, "https://blog.example.com/other"))
	})
}

func TestInjectAuthorLink(t *testing.T) {
	t.Parallel()

	aug := &autopress.Augmenter{
		AuthorLinks: map[int]autopress.AuthorLinkPolicy{
			3: {ProfileURL: "https://instagram.com/gold9", Label: "인스타그램"},
		},
	}

	t.Run("registered author gets the profile link", func(t *testing.T) {
		t.Parallel()

		got := aug.InjectAuthorLink("<p>본문</p>", 3, "")

		assert.Contains(t, got, `<a href="https://instagram.com/gold9" target="_blank">인스타그램</a>`)
	})

	t.Run("re-running is a no-op", func(t *testing.T) {
		t.Parallel()

		once := aug.InjectAuthorLink("<p>본문</p>", 3, "")
		twice := aug.InjectAuthorLink(once, 3, "")

		assert.Equal(t, once, twice)
	})

	t.Run("unregistered author falls back to the external link", func(t *testing.T) {
		t.Parallel()

		got := aug.InjectAuthorLink("<p>본문</p>", 7, "https://example.com/profile")

		assert.Contains(t, got, `<a href="https://example.com/profile" target="_blank">`)
	})

	t.Run("unregistered author without external link is untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<p>본문</p>", aug.InjectAuthorLink("<p>본문</p>", 7, ""))
	})
}

func TestAugmenter_Augment(t *testing.T) {
	t.Parallel()

	aug := &autopress.Augmenter{
		AuthorLinks: map[int]autopress.AuthorLinkPolicy{
			3: {ProfileURL: "https://instagram.com/gold9", Label: "인스타그램"},
		},
	}

	got := aug.Augment("<h2>서론</h2><p>계란은 좋습니다.</p>", "계란", autopress.AugmentOptions{
		AuthorID: 3,
		ImageURL: "https://example.com/egg.jpg",
	})

	assert.True(t, strings.HasPrefix(got, "<!-- wp:html -->\n"))
	assert.True(t, strings.HasSuffix(got, "\n<!-- /wp:html -->"))
	assert.Contains(t, got, "<h2>계란 - 서론</h2>")
	assert.Contains(t, got, `alt="계란"`)
	assert.Contains(t, got, "instagram.com/gold9")
}
