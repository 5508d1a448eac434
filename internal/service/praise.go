package service

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/model"
	"go.uber.org/zap"
)

// praises are plain text, so everything HTML-shaped is stripped
var praisePolicy = bluemonday.StrictPolicy()

type praiseService struct {
	logger *zap.Logger
	client *backend.Client
	store  *feed.Store
}

func newPraiseService(logger *zap.Logger, client *backend.Client, store *feed.Store) Praise {
	return &praiseService{
		logger: logger,
		client: client,
		store:  store,
	}
}

// Refresh loads the praise window. Failures are swallowed: the praise box is
// decoration, and an empty one must never take the page down.
func (s *praiseService) Refresh(ctx context.Context) {
	praises, err := s.client.ListPraises(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch praises: %s", err.Error())
		return
	}
	s.store.ReplacePraises(praises)
}

// Send submits one praise message. The message is trimmed, sanitized and cut
// to the 280-character cap before it goes out; the confirmed record is
// prepended once the backend answers, so there is no rollback case.
func (s *praiseService) Send(ctx context.Context, message string) (*model.Praise, error) {
	cleaned := html.UnescapeString(praisePolicy.Sanitize(strings.TrimSpace(message)))
	if cleaned == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "message", Message: "enter a message"}}}
	}
	if runes := []rune(cleaned); len(runes) > model.MaxPraiseLen {
		cleaned = string(runes[:model.MaxPraiseLen])
	}

	created, err := s.client.CreatePraise(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	s.store.PrependPraise(*created)
	return created, nil
}
