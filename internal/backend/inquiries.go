package backend

import (
	"context"

	"github.com/pyo-glory/site-gateway/internal/model"
)

// CreateInquiry relays a contact-form submission. The backend only acks or
// rejects; nothing in the page depends on the created record.
func (c *Client) CreateInquiry(ctx context.Context, inquiry model.Inquiry) error {
	_, err := c.postJSON(ctx, "/api/inquiries/", inquiry)
	return err
}
