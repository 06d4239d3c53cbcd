package deckserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"magecards/deck"
	"magecards/domain"
)

// Editor is the one account allowed to change decks. An empty PasswordHash
// disables every write route.
type Editor struct {
	Username     string
	PasswordHash string
}

type handler struct {
	repo      DeckRepo
	editor    Editor
	hasher    PasswordHasher
	tokens    TokenManager
	idGen     deck.IdGenerator
	publicURL string
	log       zerolog.Logger
}

func NewHandler(repo DeckRepo, editor Editor, hasher PasswordHasher, tokens TokenManager, idGen deck.IdGenerator, publicURL string, log zerolog.Logger) *handler {
	return &handler{
		repo:      repo,
		editor:    editor,
		hasher:    hasher,
		tokens:    tokens,
		idGen:     idGen,
		publicURL: publicURL,
		log:       log,
	}
}

// Register mounts every deck and auth route on r.
func (h *handler) Register(r gin.IRouter) {
	r.GET("/ready", h.ReadyHandler)

	auth := r.Group("/auth")
	auth.POST("/login", h.LoginHandler)
	auth.POST("/logout", h.LogoutHandler)

	decks := r.Group("/decks")
	decks.GET("", h.ListDecksHandler)
	decks.GET("/:name", h.GetDeckHandler)
	decks.GET("/:name/cards", h.CardsHandler)
	decks.GET("/:name/share.png", h.ShareHandler)

	editor := decks.Group("", h.RequireAuthMiddleware())
	editor.PUT("/:name", h.PutDeckHandler)
	editor.DELETE("/:name", h.DeleteDeckHandler)
	editor.POST("/import", h.ImportHandler)
}

func (h *handler) ReadyHandler(ctx *gin.Context) {
	if err := h.repo.Ping(ctx.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("deck store not ready")
		ctx.String(http.StatusServiceUnavailable, "not-ready")
		return
	}
	ctx.String(http.StatusOK, "ready")
}

// writeError maps store and context errors onto a status and body.
func (h *handler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDeckNotFound):
		ctx.String(http.StatusNotFound, ErrDeckNotFoundStr)
	case errors.Is(err, domain.ErrDuplicateDeck):
		ctx.String(http.StatusConflict, ErrDeckExistsStr)
	case errors.Is(err, domain.ErrInvalidDeckName):
		ctx.String(http.StatusBadRequest, ErrInvalidDeckNameStr)
	case errors.Is(err, deck.ErrMalformedDeck):
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
	case errors.Is(err, context.DeadlineExceeded):
		ctx.String(http.StatusGatewayTimeout, ErrServerTimeoutStr)
	case errors.Is(err, context.Canceled):
		ctx.Status(499)
	default:
		h.log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("unexpected error")
		ctx.String(http.StatusInternalServerError, ErrUnknownStr)
	}
	ctx.Abort()
}
