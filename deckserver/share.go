package deckserver

import (
	"image"
	"image/color"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultShareSize = 256
	minShareSize     = 64
	maxShareSize     = 1024
)

// ShareImage renders a QR code for url centred on a square light canvas of
// side size, leaving a margin of one eighth on every edge.
func ShareImage(url string, size int) (image.Image, error) {
	margin := size / 8
	inner := size - 2*margin

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true
	code := imaging.Resize(qr.Image(inner), inner, inner, imaging.NearestNeighbor)

	canvas := imaging.New(size, size, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	return imaging.Paste(canvas, code, image.Pt(margin, margin)), nil
}

func (h *handler) DeckURL(name string) string {
	return h.publicURL + "/decks/" + name + deckSuffix
}

// ShareHandler serves a PNG QR code pointing at the deck's document.
func (h *handler) ShareHandler(ctx *gin.Context) {
	size := defaultShareSize
	if raw := ctx.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < minShareSize || n > maxShareSize {
			ctx.String(http.StatusBadRequest, ErrBadSizeStr)
			return
		}
		size = n
	}
	d, ok := h.loadDeck(ctx, ctx.Param("name"))
	if !ok {
		return
	}

	img, err := ShareImage(h.DeckURL(d.Meta.Name), size)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.Header("Content-Type", "image/png")
	ctx.Status(http.StatusOK)
	if err := imaging.Encode(ctx.Writer, img, imaging.PNG); err != nil {
		h.log.Error().Err(err).Msg("writing share image")
	}
}
