package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/dto"
)

func (h *Handler) feedGet(c *gin.Context) {
	posts := h.store.Posts()

	views := make([]dto.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, dto.NewPostView(post, h.rewriter))
	}

	c.JSON(http.StatusOK, dto.FeedResponse{
		Loading: h.store.Loading(),
		Error:   h.store.PostsError(),
		Posts:   views,
	})
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.SubmitPostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	image, err := h.formAttachment(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	video, err := h.formAttachment(c, "video")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	input.Image, input.Video = image, video

	created, err := h.services.Post.Submit(c.Request.Context(), input)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitPostResponse{
		Post:   dto.NewPostView(*created, h.rewriter),
		Notice: "upload complete",
	})
}

// feedRefresh is the manual reload: the whole page state is refetched and the
// fresh feed returned. Concurrent reloads share one backend round trip.
func (h *Handler) feedRefresh(c *gin.Context) {
	h.services.RefreshAll(c.Request.Context())
	h.feedGet(c)
}

// formAttachment reads one optional file field. The content type is sniffed
// from the bytes, never taken from the browser's part header.
func (h *Handler) formAttachment(c *gin.Context, field string) (*dto.Attachment, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &dto.Attachment{
		Filename:    fileHeader.Filename,
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}
