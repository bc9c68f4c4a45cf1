// Package server exposes the quality computations over HTTP.
package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edastat/internal/quality"
)

// Options configures the HTTP service.
type Options struct {
	// Defaults applied when a request omits thresholds.
	Thresholds quality.Thresholds
	// MaxUploadBytes caps multipart CSV uploads.
	MaxUploadBytes int64
	// RateLimitPerSec caps requests per second; 0 disables limiting.
	RateLimitPerSec int
	// Debug keeps gin in debug mode and enables debug logs.
	Debug bool
}

// DefaultOptions returns service defaults.
func DefaultOptions() Options {
	return Options{
		Thresholds:      quality.DefaultThresholds(),
		MaxUploadBytes:  64 << 20,
		RateLimitPerSec: 50,
	}
}

// NewRouter builds the gin engine with all routes and middleware wired.
func NewRouter(opt Options) *gin.Engine {
	if !opt.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery())
	if opt.RateLimitPerSec > 0 {
		r.Use(RateLimit(opt.RateLimitPerSec))
	}
	if opt.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = opt.MaxUploadBytes
	}

	h := NewQualityHandler(opt)

	r.GET("/health", h.Health)
	r.POST("/quality", h.Quality)
	r.POST("/quality-from-csv", h.QualityFromCSV)
	r.POST("/quality-flags-from-csv", h.QualityFlagsFromCSV)
	return r
}

// Run starts the service on the given port and blocks.
func Run(port int, opt Options) error {
	addr := fmt.Sprintf(":%d", port)
	logrus.Infof("starting quality service on %s", addr)
	return NewRouter(opt).Run(addr)
}

// RequestLogger logs one line per request with method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t0 := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(t0).Milliseconds(),
			"request_id": c.GetString(requestIDKey),
		}).Info("request")
	}
}
