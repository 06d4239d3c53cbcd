package deck

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrMissingName       = errors.New("missing-deck-name")
	ErrInvalidName       = errors.New("invalid-deck-name")
	ErrDuplicateCardId   = errors.New("duplicate-card-id")
	ErrMissingCardId     = errors.New("missing-card-id")
	ErrMissingNominative = errors.New("missing-nominative")
	ErrUnknownCase       = errors.New("unknown-case")
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidName reports whether name can be used as a deck identifier in file
// names and URLs.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Validate collects every problem in the deck. A deck that fails validation can
// still be loaded and played; the editor refuses to publish it.
func (d Deck) Validate() error {
	var errs []error

	switch {
	case d.Meta.Name == "":
		errs = append(errs, ErrMissingName)
	case !ValidName(d.Meta.Name):
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidName, d.Meta.Name))
	}

	seen := map[string]bool{}
	checkId := func(kind string, i int, id string) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: %s card %d", ErrMissingCardId, kind, i))
			return
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateCardId, id))
		}
		seen[id] = true
	}

	for i, w := range d.Cards.White {
		checkId("white", i, w.ID)
		if w.Forms[Nominative] == "" {
			errs = append(errs, fmt.Errorf("%w: white card %s", ErrMissingNominative, w.ID))
		}
	}
	for i, b := range d.Cards.Black {
		checkId("black", i, b.ID)
		for _, slot := range DetectSlots(b.Template) {
			if !slot.Valid() {
				errs = append(errs, fmt.Errorf("%w: %s in black card %s", ErrUnknownCase, slot.Placeholder(), b.ID))
			}
		}
	}

	return errors.Join(errs...)
}
