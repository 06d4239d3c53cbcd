package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrMalformedDeck = errors.New("malformed-deck")

// Load decodes a deck document. Missing meta fields and card lists become empty
// values and every black card gets its slots and pick recomputed, so hand-written
// or stale documents come out consistent.
func Load(r io.Reader) (Deck, error) {
	var d Deck
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return Deck{}, fmt.Errorf("%w: %w", ErrMalformedDeck, err)
	}
	normalize(&d)
	return d, nil
}

func Unmarshal(data []byte) (Deck, error) {
	return Load(bytes.NewReader(data))
}

// Save writes d as indented JSON.
func Save(w io.Writer, d Deck) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}

func Marshal(d Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalize(d *Deck) {
	if d.FormatVersion == "" {
		d.FormatVersion = FormatVersion
	}
	d.Meta.Authors = orEmpty(d.Meta.Authors)
	d.Meta.Tags = orEmpty(d.Meta.Tags)

	if d.Cards.White == nil {
		d.Cards.White = []WhiteCard{}
	}
	if d.Cards.Black == nil {
		d.Cards.Black = []BlackCard{}
	}

	for i := range d.Cards.White {
		w := &d.Cards.White[i]
		if w.Forms == nil {
			w.Forms = Forms{}
		}
		w.Theme = orEmpty(w.Theme)
		w.Tags = orEmpty(w.Tags)
	}
	for i := range d.Cards.Black {
		b := &d.Cards.Black[i]
		b.SetTemplate(b.Template)
		b.Tags = orEmpty(b.Tags)
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
