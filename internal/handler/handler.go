package handler

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/config"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/mediaurl"
	"github.com/pyo-glory/site-gateway/internal/service"
	"github.com/pyo-glory/site-gateway/internal/theme"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	services *service.Service
	store    *feed.Store
	rewriter *mediaurl.Rewriter
	theme    theme.Theme
	site     config.SiteConfig
	proxy    *httputil.ReverseProxy
}

func New(logger *zap.Logger, services *service.Service, store *feed.Store, rewriter *mediaurl.Rewriter, th theme.Theme, site config.SiteConfig, backendURL *url.URL) *Handler {
	return &Handler{
		logger:   logger,
		services: services,
		store:    store,
		rewriter: rewriter,
		theme:    th,
		site:     site,
		proxy:    httputil.NewSingleHostReverseProxy(backendURL),
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(h.requestIDMiddleware, h.loggingMiddleware, gin.Recovery())

	clientOrigin := viper.GetString("client.origin")
	if clientOrigin == "" {
		clientOrigin = "http://localhost:7878"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: true,
	}))

	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.GET("/site", h.siteGet)
		api.GET("/feed", h.feedGet)
		api.POST("/posts", h.postsCreate)
		api.POST("/refresh", h.feedRefresh)
		api.GET("/announcements", h.announcementsGet)
		api.GET("/praises", h.praisesGet)
		api.POST("/praises", h.praisesCreate)
		api.POST("/inquiries", h.inquiriesCreate)
		api.POST("/deletion-requests", h.deletionRequestsCreate)
	}

	// media passes straight through to the backend; only /media/ is proxied
	r.GET("/media/*filepath", h.mediaProxy)
	r.HEAD("/media/*filepath", h.mediaProxy)

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) mediaProxy(c *gin.Context) {
	h.proxy.ServeHTTP(c.Writer, c.Request)
}
