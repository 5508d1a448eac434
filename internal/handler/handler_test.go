package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/config"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/mediaurl"
	"github.com/pyo-glory/site-gateway/internal/model"
	"github.com/pyo-glory/site-gateway/internal/service"
	"github.com/pyo-glory/site-gateway/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router   *gin.Engine
	store    *feed.Store
	services *service.Service
}

// newFixture wires the full stack against a fake backend.
func newFixture(t *testing.T, policy theme.Policy, backendHandler http.Handler) *fixture {
	t.Helper()

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	backendURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	logger := zap.NewNop()
	store := feed.New(0)
	client := backend.New(logger, srv.URL)

	th, err := theme.ByVariant(theme.VariantConfession)
	require.NoError(t, err)
	th.Policy = policy

	services := service.New(logger, client, store, policy)
	site := config.SiteConfig{
		PublicOrigin:   "https://pyo-glory.com",
		Variant:        string(th.Variant),
		PraiseWindow:   feed.DefaultPraiseWindow,
		MaxUploadBytes: config.DefaultMaxUploadBytes,
	}
	h := New(logger, services, store, mediaurl.New(site.PublicOrigin), th, site, backendURL)

	return &fixture{router: h.InitRoutes(), store: store, services: services}
}

func okBackend() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/posts/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.Post{ID: 99, Title: "created", Content: "c", Image: "post_images/new.png"})
			return
		}
		json.NewEncoder(w).Encode([]model.Post{{ID: 2, Title: "two", Content: "b"}, {ID: 1, Title: "one", Content: "a"}})
	})
	mux.HandleFunc("/api/announcements/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Announcement{{ID: 5, Content: "latest", CreatedAt: time.Now()}})
	})
	mux.HandleFunc("/api/praises/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Praise{})
	})
	mux.HandleFunc("/media/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("binary-image-bytes"))
	})
	return mux
}

func TestFeedRedactsBlockedPosts(t *testing.T) {
	f := newFixture(t, theme.Policy{}, okBackend())
	f.store.ReplacePosts([]model.Post{
		{ID: 2, Title: "visible", Content: "fine", Image: "a.png"},
		{ID: 1, Title: "secret title", Content: "secret content", Image: "evidence.png", Video: "clip.mp4", IsBlocked: true},
	})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 2)

	blocked := resp.Posts[1]
	assert.True(t, blocked.Blocked)
	assert.Equal(t, dto.RedactedTitle, blocked.Title)
	assert.Equal(t, dto.RedactedContent, blocked.Content)
	assert.Empty(t, blocked.Image)
	assert.Empty(t, blocked.Video)

	body := w.Body.String()
	assert.NotContains(t, body, "secret title")
	assert.NotContains(t, body, "secret content")
	assert.NotContains(t, body, "evidence.png")
	assert.NotContains(t, body, "clip.mp4")
}

func TestFeedNormalizesMediaURLs(t *testing.T) {
	f := newFixture(t, theme.Policy{}, okBackend())
	f.store.ReplacePosts([]model.Post{
		{ID: 1, Title: "t", Content: "c", Image: "http://backend:8000/post_images/a.png", Video: "clips/v.mp4"},
	})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	var resp dto.FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "/media/post_images/a.png", resp.Posts[0].Image)
	assert.Equal(t, "/media/clips/v.mp4", resp.Posts[0].Video)
}

func TestAnnouncementFailureDoesNotBreakFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/posts/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Post{{ID: 1, Title: "one", Content: "a"}})
	})
	mux.HandleFunc("/api/announcements/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/praises/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Praise{})
	})

	f := newFixture(t, theme.Policy{}, mux)
	f.services.RefreshAll(context.Background())

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Loading)
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Posts, 1)

	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/announcements", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var anns dto.AnnouncementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anns))
	assert.Nil(t, anns.Latest)
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestPostsCreateValidationFailsFast(t *testing.T) {
	backendHit := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		backendHit = true
	})

	f := newFixture(t, theme.Policy{}, mux)

	body, contentType := multipartBody(t, map[string]string{"content": "no title"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, backendHit, "validation failures must not reach the backend")
	assert.Contains(t, w.Body.String(), "title")
}

func TestPostsCreateSuccess(t *testing.T) {
	f := newFixture(t, theme.Policy{}, okBackend())

	body, contentType := multipartBody(t, map[string]string{"title": "t", "content": "c"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SubmitPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(99), resp.Post.ID)
	assert.Equal(t, "/media/post_images/new.png", resp.Post.Image)

	posts := f.store.Posts()
	require.NotEmpty(t, posts)
	assert.Equal(t, int64(99), posts[0].ID, "the created record goes first")
}

func TestPostsCreatePayloadTooLarge(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/posts/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	})

	f := newFixture(t, theme.Policy{}, mux)
	f.store.ReplacePosts([]model.Post{{ID: 1}})

	body, contentType := multipartBody(t, map[string]string{"title": "t", "content": "c"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "20 MiB", "the error names the upload ceiling")
	assert.Len(t, f.store.Posts(), 1, "the list is unchanged")
}

func TestPraisesCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/praises/", func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreatePraiseRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Praise{ID: 1, Message: req.Message})
	})

	f := newFixture(t, theme.Policy{}, mux)

	req := httptest.NewRequest(http.MethodPost, "/api/praises", strings.NewReader(`{"message": "respect"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	praises := f.store.Praises()
	require.Len(t, praises, 1)
	assert.Equal(t, "respect", praises[0].Message)
}

func TestSiteConfigEndpoint(t *testing.T) {
	f := newFixture(t, theme.Policy{RequireAttachment: true, RequireAgreement: true}, okBackend())

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/site", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confession", resp.Variant)
	assert.True(t, resp.Policy.RequireAttachment)
	assert.NotEmpty(t, resp.Palette.Primary)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), resp.MaxUploadBytes)
}

func TestMediaProxyPassesThrough(t *testing.T) {
	f := newFixture(t, theme.Policy{}, okBackend())

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/post_images/a.png", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "binary-image-bytes", w.Body.String())
}

func TestDeletionRequestLeavesFeedAlone(t *testing.T) {
	f := newFixture(t, theme.Policy{}, okBackend())
	f.store.ReplacePosts([]model.Post{{ID: 1}})

	payload := `{"reason": "shame", "apology": "i am deeply sorry about it"}`
	req := httptest.NewRequest(http.MethodPost, "/api/deletion-requests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, f.store.Posts(), 1)
}
