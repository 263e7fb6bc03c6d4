package autopress

import "context"

// Step names a stage of the publish state machine. A publish advances
// through the success steps in order; the three failure steps are terminal.
type Step string

const (
	StepValidated        Step = "validated"
	StepImageUploaded    Step = "image_uploaded"
	StepContentAugmented Step = "content_augmented"
	StepPostCreated      Step = "post_created"
	StepMetaPushed       Step = "meta_pushed"
	StepSchemaPushed     Step = "schema_pushed"
	StepDone             Step = "done"

	StepValidationFailed   Step = "validation_failed"
	StepUploadFailed       Step = "upload_failed"
	StepPostCreationFailed Step = "post_creation_failed"
)

// CallPolicy classifies a remote call. Fatal calls abort the publish on
// failure; best-effort calls surface a warning and let it proceed. The
// published post is the primary deliverable and must never be blocked by
// SEO enrichment.
type CallPolicy int

const (
	Fatal CallPolicy = iota
	BestEffort
)

// PublishRequest carries one draft plus per-publish settings.
type PublishRequest struct {
	Draft *Draft

	// Status is the WordPress post status, "draft" or "publish".
	Status string

	// Author and category; zero values fall back to site defaults.
	AuthorID   int
	CategoryID int

	// Optional link injections for the augmentation pipeline.
	InternalLink string
	ExternalLink string
}

// Receipt reports the outcome of one publish operation. Step records how
// far the state machine advanced; Warnings collects best-effort failures
// that did not change the outcome.
type Receipt struct {
	PostID   int       `json:"post_id"`
	URL      string    `json:"url"`
	MediaID  int       `json:"media_id"`
	SEO      SEOFields `json:"seo"`
	Step     Step      `json:"step"`
	Warnings []string  `json:"warnings,omitempty"`
}

// Publisher runs the publish pipeline for a single draft. Exactly one
// top-level failure reason is returned per aborted publish; uploaded media
// is not cleaned up when post creation fails.
type Publisher interface {
	Publish(ctx context.Context, req *PublishRequest) (*Receipt, error)
}
