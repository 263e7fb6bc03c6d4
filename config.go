package autopress

import (
	"os"
	"strconv"
	"strings"
)

// Config holds site-wide configuration. It is built once at process start
// and passed into every component; nothing reads the environment after
// construction.
type Config struct {
	// WordPress site base URL without trailing slash, e.g. https://blog.example.com.
	SiteURL string

	// Basic-auth credentials: WordPress username and application password.
	Username    string
	AppPassword string

	// Site name appended to SEO titles.
	SiteName string

	// Default author and category for created posts.
	AuthorID   int
	CategoryID int

	// PrimaryAuthorID identifies the author whose posts always receive the
	// fixed profile link. See AuthorLinkPolicy.
	PrimaryAuthorID int

	// Profile link injected for the primary author.
	AuthorProfileURL   string
	AuthorProfileLabel string

	// Optional password protecting the local web UI. Empty disables the check.
	UIPassword string

	// Optional Gemini API key for the article generator.
	GeminiAPIKey string

	// DraftsDir holds one folder per pending post.
	DraftsDir string

	// HistoryDB is the path of the publish history database.
	HistoryDB string
}

// ConfigFromEnv builds a Config from environment variables. It returns
// EINVALID naming every missing required variable, mirroring the order the
// variables are documented in.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		SiteURL:            strings.TrimRight(os.Getenv("WP_URL"), "/"),
		Username:           os.Getenv("WP_USERNAME"),
		AppPassword:        os.Getenv("WP_APP_PASSWORD"),
		SiteName:           os.Getenv("SITE_NAME"),
		AuthorID:           envInt("WP_AUTHOR_ID", 1),
		CategoryID:         envInt("WP_CATEGORY_ID", 1),
		PrimaryAuthorID:    envInt("PRIMARY_AUTHOR_ID", 0),
		AuthorProfileURL:   os.Getenv("AUTHOR_PROFILE_URL"),
		AuthorProfileLabel: os.Getenv("AUTHOR_PROFILE_LABEL"),
		UIPassword:         os.Getenv("APP_PASSWORD"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		DraftsDir:          os.Getenv("DRAFTS_DIR"),
		HistoryDB:          os.Getenv("HISTORY_DB"),
	}

	var missing []string
	if cfg.SiteURL == "" {
		missing = append(missing, "WP_URL")
	}
	if cfg.Username == "" {
		missing = append(missing, "WP_USERNAME")
	}
	if cfg.AppPassword == "" {
		missing = append(missing, "WP_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, Errorf(EINVALID, "missing environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.DraftsDir == "" {
		cfg.DraftsDir = "publish"
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = "autopress.db"
	}
	return cfg, nil
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
