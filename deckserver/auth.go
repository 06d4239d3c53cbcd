package deckserver

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"magecards/config"
	"magecards/domain"
)

const editorKey = "editor"

func (h *handler) RequireAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(config.EditorCookie.Name)
		if err != nil {
			ctx.String(http.StatusUnauthorized, ErrMissingTokenStr)
			ctx.Abort()
			return
		}
		editor, err := h.tokens.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrExpiredToken):
				ctx.String(http.StatusUnauthorized, ErrExpiredTokenStr)
			case errors.Is(err, domain.ErrInvalidSigningAlg),
				errors.Is(err, domain.ErrInvalidTokenSignature),
				errors.Is(err, domain.ErrCorruptedToken):
				h.log.Warn().Err(err).Str("ip", ctx.ClientIP()).Msg("rejected editor token")
				ctx.String(http.StatusUnauthorized, ErrBadTokenStr)
			default:
				h.log.Error().Err(err).Msg("token verification failed")
				ctx.String(http.StatusInternalServerError, ErrUnknownStr)
			}
			ctx.Abort()
			return
		}
		// a token signed before the editor was renamed is no longer good
		if editor != h.editor.Username {
			ctx.String(http.StatusUnauthorized, ErrBadTokenStr)
			ctx.Abort()
			return
		}
		ctx.Set(editorKey, editor)
		ctx.Next()
	}
}

func (h *handler) LoginHandler(ctx *gin.Context) {
	var credentials struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}
	if h.editor.PasswordHash == "" {
		ctx.String(http.StatusServiceUnavailable, ErrEditorDisabledStr)
		return
	}

	match, err := h.hasher.Compare(h.editor.PasswordHash, credentials.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("editor password hash unusable")
		ctx.String(http.StatusInternalServerError, ErrUnknownStr)
		return
	}
	sameUser := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(h.editor.Username)) == 1
	if !match || !sameUser {
		ctx.String(http.StatusUnauthorized, ErrInvalidCredentialsStr)
		return
	}

	token, err := h.tokens.Generate(h.editor.Username, time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("token generation failed")
		ctx.String(http.StatusInternalServerError, ErrUnknownStr)
		return
	}
	h.setCookie(ctx, token, int(config.EditorCookie.MaxAge.Seconds()))
	ctx.Status(http.StatusOK)
}

func (h *handler) LogoutHandler(ctx *gin.Context) {
	h.setCookie(ctx, "", -1)
	ctx.Status(http.StatusOK)
}

func (h *handler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(config.EditorCookie.Name, value, maxAge, config.EditorCookie.Path, "", ctx.Request.TLS != nil, config.EditorCookie.HttpOnly)
}
