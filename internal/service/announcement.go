package service

import (
	"context"

	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"go.uber.org/zap"
)

type announcementService struct {
	logger *zap.Logger
	client *backend.Client
	store  *feed.Store
}

func newAnnouncementService(logger *zap.Logger, client *backend.Client, store *feed.Store) Announcement {
	return &announcementService{
		logger: logger,
		client: client,
		store:  store,
	}
}

// Refresh loads the announcement board. A failure here is non-fatal to the
// page: it is logged and the board keeps whatever it had.
func (s *announcementService) Refresh(ctx context.Context) {
	announcements, err := s.client.ListAnnouncements(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch announcements: %s", err.Error())
		return
	}
	s.store.ReplaceAnnouncements(announcements)
}
