package mock

import (
	"context"

	"github.com/gold9-app/autopress"
)

var _ autopress.TagService = (*TagService)(nil)

// TagService is a mock implementation of autopress.TagService.
type TagService struct {
	ResolveTagIDsFn func(ctx context.Context, names []string) ([]int, []string)
}

func (s *TagService) ResolveTagIDs(ctx context.Context, names []string) ([]int, []string) {
	return s.ResolveTagIDsFn(ctx, names)
}

var _ autopress.MediaService = (*MediaService)(nil)

// MediaService is a mock implementation of autopress.MediaService.
type MediaService struct {
	UploadImageFn func(ctx context.Context, filename string, data []byte, altText string) (*autopress.Media, error)
}

func (s *MediaService) UploadImage(ctx context.Context, filename string, data []byte, altText string) (*autopress.Media, error) {
	return s.UploadImageFn(ctx, filename, data, altText)
}

var _ autopress.PostService = (*PostService)(nil)

// PostService is a mock implementation of autopress.PostService.
type PostService struct {
	CreatePostFn func(ctx context.Context, post *autopress.NewPost) (*autopress.Post, error)
	PingPostFn   func(ctx context.Context, postID int) error
}

func (s *PostService) CreatePost(ctx context.Context, post *autopress.NewPost) (*autopress.Post, error) {
	return s.CreatePostFn(ctx, post)
}

func (s *PostService) PingPost(ctx context.Context, postID int) error {
	return s.PingPostFn(ctx, postID)
}

var _ autopress.SEOMetaService = (*SEOMetaService)(nil)

// SEOMetaService is a mock implementation of autopress.SEOMetaService.
type SEOMetaService struct {
	UpdateMetaFn   func(ctx context.Context, postID int, fields autopress.SEOFields) error
	UpdateSchemaFn func(ctx context.Context, postID int) error
}

func (s *SEOMetaService) UpdateMeta(ctx context.Context, postID int, fields autopress.SEOFields) error {
	return s.UpdateMetaFn(ctx, postID, fields)
}

func (s *SEOMetaService) UpdateSchema(ctx context.Context, postID int) error {
	return s.UpdateSchemaFn(ctx, postID)
}
