package deck

// Form returns the text of the card for the requested case. When that form is
// missing or blank it falls back to the nominative, then to the first non-blank
// form in Cases order, then to any remaining form. A card with no forms yields "".
func (w WhiteCard) Form(c Case) string {
	if text := w.Forms[c]; text != "" {
		return text
	}
	if text := w.Forms[Nominative]; text != "" {
		return text
	}
	for _, known := range Cases {
		if text := w.Forms[known]; text != "" {
			return text
		}
	}
	for _, text := range w.Forms {
		if text != "" {
			return text
		}
	}
	return ""
}

func (w WhiteCard) Nominative() string {
	return w.Form(Nominative)
}

// NewWhiteCard builds a card from its nominative form only; every other case
// resolves to it through Form.
func NewWhiteCard(id, nominative string) WhiteCard {
	return WhiteCard{
		ID:     id,
		Forms:  Forms{Nominative: nominative},
		Theme:  []string{},
		Tags:   []string{},
		Weight: DefaultWeight,
	}
}
