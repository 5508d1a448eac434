package config

import (
	"net/http"
	"time"
)

// DefaultMaxUploadBytes mirrors the backend's documented upload ceiling. The
// gateway never pre-checks file sizes; the number only feeds error messages.
const DefaultMaxUploadBytes = 20 << 20

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type BackendConfig struct {
	Origin string
}

type SiteConfig struct {
	PublicOrigin   string
	Variant        string
	PraiseWindow   int
	MaxUploadBytes int64
}
