package autopress

import (
	"regexp"
	"strings"
)

var (
	tagRE        = regexp.MustCompile(`<[^>]+>`)
	countRE      = regexp.MustCompile(`\d+\s*가지`)
	punctRE      = regexp.MustCompile(`[|,\-~:?!]`)
	spaceRE      = regexp.MustCompile(`\s+`)
	nonSlugRE    = regexp.MustCompile(`[^\w\s가-힣-]`)
	slugDashRE   = regexp.MustCompile(`\s+`)
	firstCloseRE = regexp.MustCompile(`</[^>]+>`)
)

// Replacement is one ordered rewrite rule. Rules are applied sequentially
// with ReplaceOrdered; order matters because a later rule can consume a
// substring an earlier rule left behind.
type Replacement struct {
	Old string
	New string
}

// ReplaceOrdered applies rules to s one after another, replacing every
// occurrence of each rule before moving to the next.
func ReplaceOrdered(s string, rules []Replacement) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}

// fillerRules lists title fragments that carry no topical meaning, longest
// and most specific first so they match before their shorter substrings.
var fillerRules = []Replacement{
	// phrases
	{Old: "에 대해 잘못 알려진"}, {Old: "에 대해 알려진"}, {Old: "에 대해 알아야 할"},
	{Old: "꼭 알아야 할"}, {Old: "알아야 할"}, {Old: "꼭 알아야할"}, {Old: "반드시 알아야 할"},
	{Old: "에 대해"}, {Old: "에 대한"}, {Old: "에서의"}, {Old: "에서"}, {Old: "으로의"},
	{Old: "으로"}, {Old: "를 위한"}, {Old: "을 위한"},
	{Old: "하는 방법"}, {Old: "하는 법"}, {Old: "하는법"}, {Old: "알아보기"}, {Old: "알아보자"},
	// generic descriptive nouns
	{Old: "상식"}, {Old: "방법"}, {Old: "효과"}, {Old: "원인"}, {Old: "증상"}, {Old: "종류"},
	{Old: "차이"}, {Old: "차이점"},
	{Old: "비교"}, {Old: "추천"}, {Old: "정리"}, {Old: "총정리"}, {Old: "리뷰"}, {Old: "후기"},
	{Old: "장점"}, {Old: "단점"}, {Old: "장단점"}, {Old: "주의사항"}, {Old: "부작용"}, {Old: "특징"},
	{Old: "가이드"}, {Old: "완벽 가이드"}, {Old: "핵심 정리"},
	{Old: "진실"}, {Old: "오해"}, {Old: "팩트"}, {Old: "팩트체크"}, {Old: "궁금증"},
	// modifiers
	{Old: "잘못 알려진"}, {Old: "잘못알려진"}, {Old: "최신"}, {Old: "최고의"}, {Old: "효과적인"},
	{Old: "올바른"}, {Old: "정확한"}, {Old: "꼭 필요한"}, {Old: "반드시"}, {Old: "꼭"},
}

// ExtractFocusKeyword reduces a post title to its core topic, e.g.
// "계란에 대해 잘못 알려진 6가지 상식" becomes "계란". Count suffixes
// ("6가지") are removed first, then the ordered filler rules, then residual
// punctuation. Falls back to the full title when nothing survives.
func ExtractFocusKeyword(title string) string {
	keyword := countRE.ReplaceAllString(title, "")
	keyword = ReplaceOrdered(keyword, fillerRules)
	keyword = punctRE.ReplaceAllString(keyword, "")
	keyword = strings.TrimSpace(spaceRE.ReplaceAllString(keyword, " "))
	if keyword == "" {
		return title
	}
	return keyword
}

// Slugify builds a URL slug: lowercase, everything outside word characters,
// whitespace, Hangul, and hyphens removed, whitespace runs collapsed to
// single hyphens. Hangul is preserved; WordPress percent-encodes it. Word
// characters are ASCII-only, so letters outside the kept ranges (accented
// Latin, other scripts) are dropped rather than kept.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonSlugRE.ReplaceAllString(slug, "")
	slug = slugDashRE.ReplaceAllString(slug, "-")
	return slug
}

// StripHTML removes all tags from an HTML fragment and trims the result.
func StripHTML(html string) string {
	return strings.TrimSpace(tagRE.ReplaceAllString(html, ""))
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// headRunes returns the first n runes of s, or s itself when shorter.
func headRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
