package autopress_test

import (
	"strings"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/stretchr/testify/assert"
)

func TestBuildSEOFields(t *testing.T) {
	t.Parallel()

	t.Run("derives all fields from a Korean title", func(t *testing.T) {
		t.Parallel()

		fields := autopress.BuildSEOFields(
			"계란에 대해 잘못 알려진 6가지 상식",
			"<p>계란은 단백질이 풍부한 식품입니다.</p>",
			"골드나인",
			autopress.MetaOverride{},
		)

		assert.Equal(t, "계란", fields.FocusKeyword)
		assert.Equal(t, "계란에 대해 잘못 알려진 6가지 상식 - 골드나인", fields.SEOTitle)
		assert.Equal(t, "계란은 단백질이 풍부한 식품입니다.", fields.Description)
		assert.Equal(t, "계란", fields.Slug)
		assert.Empty(t, fields.Tags)
	})

	t.Run("seo title names the keyword when the title lacks it", func(t *testing.T) {
		t.Parallel()

		fields := autopress.BuildSEOFields(
			"Egg myths debunked",
			"<p>Eggs are great.</p>",
			"MySite",
			autopress.MetaOverride{FocusKeyword: "Eggs"},
		)

		assert.Equal(t, "Egg myths debunked | Eggs - MySite", fields.SEOTitle)
	})

	t.Run("description ends at the last sentence period past position 50", func(t *testing.T) {
		t.Parallel()

		sentence := "Eggs are a versatile ingredient used in countless recipes around the world every single day."
		content := "<p>" + sentence + " More filler follows without ending punctuation</p>"

		fields := autopress.BuildSEOFields("Eggs", content, "MySite", autopress.MetaOverride{})

		assert.Equal(t, sentence, fields.Description)
	})

	t.Run("description is prefixed with the keyword when absent", func(t *testing.T) {
		t.Parallel()

		fields := autopress.BuildSEOFields(
			"계란 상식",
			"<p>Short text without the magic word here.</p>",
			"MySite",
			autopress.MetaOverride{},
		)

		assert.Equal(t, "계란 - Short text without the magic word here.", fields.Description)
	})

	t.Run("description never exceeds 155 characters", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("가", 200)
		fields := autopress.BuildSEOFields("계란 상식", "<p>본문</p>", "MySite",
			autopress.MetaOverride{Description: long})

		runes := []rune(fields.Description)
		assert.Len(t, runes, 155)
		assert.Equal(t, strings.Repeat("가", 152)+"...", fields.Description)
	})

	t.Run("keyword survives the cap on derived descriptions", func(t *testing.T) {
		t.Parallel()

		// A long keyword absent from long content forces the prepend and
		// then the cap; prepend-before-cap means the keyword must survive.
		keyword := strings.Repeat("계란", 10)
		content := "<p>" + strings.Repeat("가", 200) + "</p>"

		fields := autopress.BuildSEOFields("무관한 제목", content, "MySite",
			autopress.MetaOverride{FocusKeyword: keyword})

		assert.LessOrEqual(t, len([]rune(fields.Description)), 155)
		assert.Contains(t, fields.Description, keyword)
	})

	t.Run("manual overrides win field by field", func(t *testing.T) {
		t.Parallel()

		fields := autopress.BuildSEOFields("계란 상식", "<p>계란 본문입니다.</p>", "MySite",
			autopress.MetaOverride{
				FocusKeyword: "달걀",
				SEOTitle:     "custom title",
				Description:  "custom description",
				Slug:         "custom-slug",
				Tags:         []string{"계란", "요리"},
			})

		assert.Equal(t, "달걀", fields.FocusKeyword)
		assert.Equal(t, "custom title", fields.SEOTitle)
		assert.Equal(t, "custom description", fields.Description)
		assert.Equal(t, "custom-slug", fields.Slug)
		assert.Equal(t, []string{"계란", "요리"}, fields.Tags)
	})
}
