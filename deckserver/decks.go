package deckserver

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"magecards/deck"
	"magecards/domain"
)

const (
	deckSuffix = ".json"
	// maxDeckBytes bounds uploaded documents and legacy files.
	maxDeckBytes = 8 << 20
)

func (h *handler) ListDecksHandler(ctx *gin.Context) {
	names, err := h.repo.ListDecks(ctx.Request.Context())
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"decks": names})
}

// GetDeckHandler serves /decks/<name>.json, the stable document path.
func (h *handler) GetDeckHandler(ctx *gin.Context) {
	file := ctx.Param("name")
	name, ok := strings.CutSuffix(file, deckSuffix)
	if !ok {
		ctx.String(http.StatusNotFound, ErrDeckNotFoundStr)
		return
	}
	d, ok := h.loadDeck(ctx, name)
	if !ok {
		return
	}
	ctx.Header("Cache-Control", "no-cache")
	ctx.Render(http.StatusOK, deckRender{d})
}

func (h *handler) CardsHandler(ctx *gin.Context) {
	var opt deck.FilterOptions
	if err := ctx.ShouldBindQuery(&opt); err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}
	d, ok := h.loadDeck(ctx, ctx.Param("name"))
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, deck.Cards{
		White: deck.FilterWhite(d.Cards.White, opt),
		Black: deck.FilterBlack(d.Cards.Black, opt),
	})
}

// PutDeckHandler publishes a full document. The body goes through deck.Load,
// so slots and pick are recomputed before anything is stored.
func (h *handler) PutDeckHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	d, err := deck.Load(io.LimitReader(ctx.Request.Body, maxDeckBytes))
	if err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}
	switch d.Meta.Name {
	case "":
		d.Meta.Name = name
	case name:
	default:
		ctx.String(http.StatusBadRequest, ErrNameMismatchStr)
		return
	}
	if err := d.Validate(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  ErrInvalidDeckStr,
			"issues": strings.Split(err.Error(), "\n"),
		})
		return
	}
	if err := h.repo.SaveDeck(ctx.Request.Context(), d); err != nil {
		h.writeError(ctx, err)
		return
	}
	h.log.Info().Str("deck", name).Str("editor", ctx.GetString(editorKey)).
		Int("white", len(d.Cards.White)).Int("black", len(d.Cards.Black)).Msg("deck saved")
	ctx.Status(http.StatusNoContent)
}

func (h *handler) DeleteDeckHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	if err := h.repo.DeleteDeck(ctx.Request.Context(), name); err != nil {
		h.writeError(ctx, err)
		return
	}
	h.log.Info().Str("deck", name).Str("editor", ctx.GetString(editorKey)).Msg("deck deleted")
	ctx.Status(http.StatusNoContent)
}

// ImportHandler takes a multipart form with a "name" field and optional
// "white" and "black" legacy line files.
func (h *handler) ImportHandler(ctx *gin.Context) {
	name := ctx.PostForm("name")
	if !deck.ValidName(name) {
		ctx.String(http.StatusBadRequest, ErrInvalidDeckNameStr)
		return
	}
	white, errW := formFile(ctx, "white")
	black, errB := formFile(ctx, "black")
	if errW != nil || errB != nil || (white == nil && black == nil) {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}

	d, err := deck.ImportLegacy(name, white, black, h.idGen)
	if err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}
	if displayName := ctx.PostForm("display_name"); displayName != "" {
		d.Meta.DisplayName = displayName
	}
	if language := ctx.PostForm("language"); language != "" {
		d.Meta.Language = language
	}
	if err := h.repo.CreateDeck(ctx.Request.Context(), d); err != nil {
		h.writeError(ctx, err)
		return
	}
	h.log.Info().Str("deck", name).Int("white", len(d.Cards.White)).Int("black", len(d.Cards.Black)).Msg("legacy deck imported")
	ctx.Render(http.StatusCreated, deckRender{d})
}

// formFile returns nil, nil when the field is absent.
func formFile(ctx *gin.Context, field string) (io.Reader, error) {
	header, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size > maxDeckBytes {
		return nil, multipart.ErrMessageTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func (h *handler) loadDeck(ctx *gin.Context, name string) (deck.Deck, bool) {
	if !deck.ValidName(name) {
		h.writeError(ctx, domain.ErrDeckNotFound)
		return deck.Deck{}, false
	}
	d, err := h.repo.GetDeck(ctx.Request.Context(), name)
	if err != nil {
		h.writeError(ctx, err)
		return deck.Deck{}, false
	}
	return d, true
}

// deckRender writes the document exactly as deck.Save formats it.
type deckRender struct {
	d deck.Deck
}

func (r deckRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return deck.Save(w, r.d)
}

func (r deckRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
}
