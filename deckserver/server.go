// Package deckserver serves deck documents over HTTP and lets a single
// configured editor publish, import and delete them.
package deckserver

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CreateServer returns an engine with health, logging, origin and CORS
// middleware installed. Requests without an Origin header (curl, the game
// client) pass; browsers must come from allowedOrigins.
func CreateServer(allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	r.Use(gin.Recovery(), requestLogger(log))
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, ErrForbiddenOriginStr)
		ctx.Abort()
	})

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			MaxAge:           12 * time.Hour,
		}))
	}
	return r
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		ev := log.Info()
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
