// Package autopress automates publishing pre-authored blog posts to a
// WordPress site over its REST API. It derives Rank Math SEO fields from
// the post title and content, rewrites the HTML so the focus keyword
// appears in the opening paragraph, a subheading, and an image alt text,
// and pushes the resulting metadata to the Rank Math plugin endpoints.
//
// This package contains domain types, pure transformation functions, and
// service interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., wordpress/, sqlite/, gemini/).
package autopress
