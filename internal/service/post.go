package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/model"
	"github.com/pyo-glory/site-gateway/internal/theme"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type postService struct {
	logger   *zap.Logger
	client   *backend.Client
	store    *feed.Store
	policy   theme.Policy
	validate *validator.Validate
	sf       singleflight.Group
}

func newPostService(logger *zap.Logger, client *backend.Client, store *feed.Store, policy theme.Policy) Post {
	return &postService{
		logger:   logger,
		client:   client,
		store:    store,
		policy:   policy,
		validate: validator.New(),
	}
}

// Refresh replaces the whole post list from the backend. Concurrent callers
// share one in-flight fetch. On failure the store keeps its last snapshot and
// surfaces an error banner.
func (s *postService) Refresh(ctx context.Context) error {
	_, err, _ := s.sf.Do("posts", func() (interface{}, error) {
		posts, err := s.client.ListPosts(ctx)
		if err != nil {
			s.logger.Sugar().Errorf("failed to fetch posts: %s", err.Error())
			s.store.FailPosts("failed to load the archive")
			return nil, err
		}
		s.store.ReplacePosts(posts)
		return nil, nil
	})
	return err
}

// Submit runs one submission attempt end to end: pre-flight validation, one
// multipart POST, then prepend of the canonical record. Nothing is retried;
// a failed attempt is terminal until the user resubmits.
func (s *postService) Submit(ctx context.Context, in dto.SubmitPostRequest) (*model.Post, error) {
	if verr := s.preflight(in); verr != nil {
		return nil, verr
	}

	created, err := s.client.CreatePost(ctx, in)
	if err != nil {
		return nil, err
	}

	s.store.PrependPost(*created)
	return created, nil
}

func (s *postService) preflight(in dto.SubmitPostRequest) *ValidationError {
	var fields []FieldError

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				name := strings.ToLower(fe.Field())
				fields = append(fields, FieldError{Field: name, Message: name + " is required"})
			}
		} else {
			fields = append(fields, FieldError{Field: "form", Message: "invalid form data"})
		}
	}

	if in.Image != nil && !strings.HasPrefix(in.Image.ContentType, "image/") {
		fields = append(fields, FieldError{Field: "image", Message: "file must be an image"})
	}
	if in.Video != nil && !strings.HasPrefix(in.Video.ContentType, "video/") {
		fields = append(fields, FieldError{Field: "video", Message: "file must be a video"})
	}

	if s.policy.RequireAttachment && in.Image == nil && in.Video == nil {
		fields = append(fields, FieldError{Field: "attachment", Message: "attach a photo or video"})
	}
	if s.policy.RequireAgreement && !in.Agreed {
		fields = append(fields, FieldError{Field: "agreed", Message: "the terms must be accepted before submitting"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
