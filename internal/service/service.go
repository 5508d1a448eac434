package service

import (
	"context"
	"sync"

	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/model"
	"github.com/pyo-glory/site-gateway/internal/theme"
	"go.uber.org/zap"
)

type Post interface {
	Refresh(ctx context.Context) error
	Submit(ctx context.Context, in dto.SubmitPostRequest) (*model.Post, error)
}

type Praise interface {
	Refresh(ctx context.Context)
	Send(ctx context.Context, message string) (*model.Praise, error)
}

type Announcement interface {
	Refresh(ctx context.Context)
}

type Inquiry interface {
	Send(ctx context.Context, in dto.CreateInquiryRequest) error
	RequestDeletion(ctx context.Context, in dto.DeletionRequest) error
}

type Service struct {
	Post
	Praise
	Announcement
	Inquiry
}

func New(logger *zap.Logger, client *backend.Client, store *feed.Store, policy theme.Policy) *Service {
	return &Service{
		Post:         newPostService(logger, client, store, policy),
		Praise:       newPraiseService(logger, client, store),
		Announcement: newAnnouncementService(logger, client, store),
		Inquiry:      newInquiryService(logger, client),
	}
}

// RefreshAll performs the mount-time fetches. Each feed loads independently:
// a failing fetch records or logs its own error and never blocks the others.
func (s *Service) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		_ = s.Post.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Announcement.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Praise.Refresh(ctx)
	}()
	wg.Wait()
}
