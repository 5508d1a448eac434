package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/model"
)

const postsEndpoint = "/api/posts/"

func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	return getList[model.Post](c, ctx, postsEndpoint)
}

// CreatePost submits one post as multipart/form-data and returns the
// backend's canonical record. Text fields are always written, empty or not
// (the contract is lenient); file parts are attached only when present.
func (c *Client) CreatePost(ctx context.Context, in dto.SubmitPostRequest) (*model.Post, error) {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	textFields := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"location", in.Location},
		{"achieved_at", in.AchievedAt},
		{"content", in.Content},
	}
	for _, field := range textFields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			c.logger.Sugar().Errorf("failed to write %s field for post submission: %s", field.name, err.Error())
			return nil, fmt.Errorf("write form field %s: %w", field.name, err)
		}
	}

	if in.Image != nil {
		if err := writeAttachment(writer, "image", in.Image); err != nil {
			return nil, err
		}
	}
	if in.Video != nil {
		if err := writeAttachment(writer, "video", in.Video); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		c.logger.Sugar().Errorf("failed to close multipart writer for post submission: %s", err.Error())
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+postsEndpoint, &requestBody)
	if err != nil {
		return nil, fmt.Errorf("create request to %s: %w", postsEndpoint, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", postsEndpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", postsEndpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(postsEndpoint, resp.StatusCode, body)
	}

	var created model.Post
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode created post: %w", err)
	}

	return &created, nil
}

func writeAttachment(writer *multipart.Writer, field string, attachment *dto.Attachment) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, attachment.Filename))
	if attachment.ContentType != "" {
		header.Set("Content-Type", attachment.ContentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(attachment.Data); err != nil {
		return fmt.Errorf("write %s part: %w", field, err)
	}

	return nil
}
