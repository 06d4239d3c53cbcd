package deck

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index-out-of-range")

// Editor mutates a deck in place. Index arguments follow the editor UI: an index
// equal to the list length appends, an existing index replaces.
type Editor struct {
	deck  *Deck
	idGen IdGenerator
}

func NewEditor(d *Deck, idGen IdGenerator) *Editor {
	normalize(d)
	return &Editor{deck: d, idGen: idGen}
}

func (e *Editor) Deck() *Deck {
	return e.deck
}

// UpsertWhite stores card at index and returns the stored card. A card without
// an id gets the id of the card it replaces, or a fresh one when appended.
func (e *Editor) UpsertWhite(index int, card WhiteCard) (WhiteCard, error) {
	white := e.deck.Cards.White
	if index < 0 || index > len(white) {
		return WhiteCard{}, fmt.Errorf("%w: white card %d of %d", ErrIndexOutOfRange, index, len(white))
	}

	if card.Forms == nil {
		card.Forms = Forms{}
	}
	card.Theme = orEmpty(card.Theme)
	card.Tags = orEmpty(card.Tags)
	if index == len(white) {
		if card.Weight == 0 {
			card.Weight = DefaultWeight
		}
		if card.ID == "" {
			card.ID = e.idGen.Generate(WhiteIdPrefix)
		}
		e.deck.Cards.White = append(white, card)
		return card, nil
	}

	if card.ID == "" {
		card.ID = white[index].ID
	}
	white[index] = card
	return card, nil
}

// UpsertBlack stores card at index, rederiving slots and pick from its template.
func (e *Editor) UpsertBlack(index int, card BlackCard) (BlackCard, error) {
	black := e.deck.Cards.Black
	if index < 0 || index > len(black) {
		return BlackCard{}, fmt.Errorf("%w: black card %d of %d", ErrIndexOutOfRange, index, len(black))
	}

	card.SetTemplate(card.Template)
	card.Tags = orEmpty(card.Tags)
	if index == len(black) {
		if card.Weight == 0 {
			card.Weight = DefaultWeight
		}
		if card.ID == "" {
			card.ID = e.idGen.Generate(BlackIdPrefix)
		}
		e.deck.Cards.Black = append(black, card)
		return card, nil
	}

	if card.ID == "" {
		card.ID = black[index].ID
	}
	black[index] = card
	return card, nil
}

func (e *Editor) RemoveWhite(index int) error {
	white := e.deck.Cards.White
	if index < 0 || index >= len(white) {
		return fmt.Errorf("%w: white card %d of %d", ErrIndexOutOfRange, index, len(white))
	}
	e.deck.Cards.White = append(white[:index], white[index+1:]...)
	return nil
}

func (e *Editor) RemoveBlack(index int) error {
	black := e.deck.Cards.Black
	if index < 0 || index >= len(black) {
		return fmt.Errorf("%w: black card %d of %d", ErrIndexOutOfRange, index, len(black))
	}
	e.deck.Cards.Black = append(black[:index], black[index+1:]...)
	return nil
}
