// Package publish orchestrates the publication of one draft: SEO field
// derivation, image upload, content augmentation, post creation, and the
// best-effort Rank Math pushes, in that fixed order.
package publish

import (
	"context"
	"fmt"

	"github.com/gold9-app/autopress"
)

// Ensure Publisher implements autopress.Publisher at compile time.
var _ autopress.Publisher = (*Publisher)(nil)

// Publisher coordinates the remote services for a single publish. Each
// publish is strictly sequential with no shared mutable state, so one
// Publisher may serve concurrent requests.
type Publisher struct {
	Tags    autopress.TagService
	Media   autopress.MediaService
	Posts   autopress.PostService
	SEOMeta autopress.SEOMetaService

	// History, when set, records successful publishes. Recording failures
	// are warnings, never publish failures.
	History autopress.HistoryService

	Augmenter *autopress.Augmenter

	SiteName          string
	DefaultAuthorID   int
	DefaultCategoryID int
}

// Publish runs the state machine for one draft. The returned receipt is
// always non-nil and records how far the publish advanced; on failure the
// error carries the single top-level reason. Media uploaded before a failed
// post creation is not cleaned up.
func (p *Publisher) Publish(ctx context.Context, req *autopress.PublishRequest) (*autopress.Receipt, error) {
	rcpt := &autopress.Receipt{}

	draft := req.Draft
	if err := draft.Validate(); err != nil {
		rcpt.Step = autopress.StepValidationFailed
		return rcpt, err
	}
	rcpt.Step = autopress.StepValidated

	authorID := req.AuthorID
	if authorID == 0 {
		authorID = p.DefaultAuthorID
	}
	categoryID := req.CategoryID
	if categoryID == 0 {
		categoryID = p.DefaultCategoryID
	}

	seo := autopress.BuildSEOFields(draft.Title, draft.HTML, p.SiteName, draft.Meta)
	rcpt.SEO = seo

	media, uploadErr := p.Media.UploadImage(ctx, draft.ImageName, draft.ImageData, seo.FocusKeyword)
	if err := p.apply(rcpt, autopress.Fatal, "image upload", uploadErr); err != nil {
		rcpt.Step = autopress.StepUploadFailed
		return rcpt, err
	}
	rcpt.MediaID = media.ID
	rcpt.Step = autopress.StepImageUploaded

	content := p.Augmenter.Augment(draft.HTML, seo.FocusKeyword, autopress.AugmentOptions{
		AuthorID:     authorID,
		ImageURL:     media.SourceURL,
		InternalLink: req.InternalLink,
		ExternalLink: req.ExternalLink,
	})
	rcpt.Step = autopress.StepContentAugmented

	var tagIDs []int
	if len(seo.Tags) > 0 {
		var warnings []string
		tagIDs, warnings = p.Tags.ResolveTagIDs(ctx, seo.Tags)
		rcpt.Warnings = append(rcpt.Warnings, warnings...)
	}

	post, createErr := p.Posts.CreatePost(ctx, &autopress.NewPost{
		Title:         draft.Title,
		Content:       content,
		Status:        req.Status,
		Slug:          seo.Slug,
		FeaturedMedia: media.ID,
		Categories:    []int{categoryID},
		Author:        authorID,
		Tags:          tagIDs,
	})
	if err := p.apply(rcpt, autopress.Fatal, "post creation", createErr); err != nil {
		rcpt.Step = autopress.StepPostCreationFailed
		return rcpt, err
	}
	rcpt.PostID = post.ID
	rcpt.URL = post.Link
	rcpt.Step = autopress.StepPostCreated

	// Everything past post creation is SEO enrichment: best-effort by
	// policy, the published post is never rolled back.
	_ = p.apply(rcpt, autopress.BestEffort, "rank math meta",
		p.SEOMeta.UpdateMeta(ctx, post.ID, seo))
	rcpt.Step = autopress.StepMetaPushed

	_ = p.apply(rcpt, autopress.BestEffort, "rank math schema",
		p.SEOMeta.UpdateSchema(ctx, post.ID))
	rcpt.Step = autopress.StepSchemaPushed

	_ = p.apply(rcpt, autopress.BestEffort, "post re-save",
		p.Posts.PingPost(ctx, post.ID))

	if p.History != nil {
		_ = p.apply(rcpt, autopress.BestEffort, "history record",
			p.History.CreateRecord(ctx, &autopress.PublishRecord{
				Title:        draft.Title,
				Slug:         seo.Slug,
				FocusKeyword: seo.FocusKeyword,
				PostID:       post.ID,
				URL:          post.Link,
				ContentHash:  autopress.HashContent(draft.HTML),
			}))
	}

	rcpt.Step = autopress.StepDone
	return rcpt, nil
}

// apply records one remote call outcome under its policy. Fatal errors are
// returned for the caller to abort on; best-effort errors become receipt
// warnings and nil is returned so the publish proceeds.
func (p *Publisher) apply(rcpt *autopress.Receipt, policy autopress.CallPolicy, name string, err error) error {
	if err == nil {
		return nil
	}
	if policy == autopress.Fatal {
		return err
	}
	rcpt.Warnings = append(rcpt.Warnings, fmt.Sprintf("%s: %s", name, autopress.ErrorMessage(err)))
	return nil
}
