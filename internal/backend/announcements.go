package backend

import (
	"context"

	"github.com/pyo-glory/site-gateway/internal/model"
)

func (c *Client) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return getList[model.Announcement](c, ctx, "/api/announcements/")
}
