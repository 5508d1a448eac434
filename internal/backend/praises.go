package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/model"
)

const praisesEndpoint = "/api/praises/"

func (c *Client) ListPraises(ctx context.Context) ([]model.Praise, error) {
	return getList[model.Praise](c, ctx, praisesEndpoint)
}

// CreatePraise sends one praise message and returns the canonical record.
// The caller truncates and sanitizes the message first.
func (c *Client) CreatePraise(ctx context.Context, message string) (*model.Praise, error) {
	body, err := c.postJSON(ctx, praisesEndpoint, dto.CreatePraiseRequest{Message: message})
	if err != nil {
		return nil, err
	}

	var created model.Praise
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode created praise: %w", err)
	}

	return &created, nil
}
