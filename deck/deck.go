package deck

import (
	"encoding/json"
	"fmt"
)

const FormatVersion = "1.0"

// DefaultWeight is given to cards created in the editor.
const DefaultWeight = 1

type Deck struct {
	FormatVersion string `json:"format_version"`
	Meta          Meta   `json:"meta"`
	Cards         Cards  `json:"cards"`
}

// Meta describes a deck. Name is the stable identifier used in URLs and in
// CREATE_ROOM deck selections; DisplayName is only shown to people.
type Meta struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version"`
}

type Cards struct {
	White []WhiteCard `json:"white"`
	Black []BlackCard `json:"black"`
}

type WhiteCard struct {
	ID     string   `json:"id"`
	Forms  Forms    `json:"forms"`
	Theme  []string `json:"theme"`
	Tags   []string `json:"tags"`
	Weight float64  `json:"weight"`
}

// Forms maps a case code to the inflected text of a white card.
type Forms map[Case]string

// UnmarshalJSON accepts the object layout {"M": "...", "B": "..."} as well as
// the older positional array layout, whose entries follow Cases order.
func (f *Forms) UnmarshalJSON(data []byte) error {
	var byCase map[Case]string
	if err := json.Unmarshal(data, &byCase); err == nil {
		*f = byCase
		return nil
	}

	var positional []string
	if err := json.Unmarshal(data, &positional); err != nil {
		return fmt.Errorf("forms must be an object or an array of strings: %w", err)
	}
	forms := make(Forms, len(positional))
	for i, text := range positional {
		if i >= len(Cases) {
			break
		}
		forms[Cases[i]] = text
	}
	*f = forms
	return nil
}

type BlackCard struct {
	ID       string   `json:"id"`
	Template string   `json:"template"`
	Slots    []Case   `json:"slots"`
	Pick     int      `json:"pick"`
	Tags     []string `json:"tags"`
	Weight   float64  `json:"weight"`
}

// NewBlackCard returns a card whose slots and pick are derived from template.
func NewBlackCard(id, template string) BlackCard {
	b := BlackCard{ID: id, Tags: []string{}, Weight: DefaultWeight}
	b.SetTemplate(template)
	return b
}

// SetTemplate replaces the template and recomputes Slots and Pick. Never assign
// Template directly on a card that will be read again.
func (b *BlackCard) SetTemplate(template string) {
	b.Template = template
	b.Slots = DetectSlots(template)
	b.Pick = DerivePick(b.Slots)
}

// UnmarshalJSON always rederives Slots and Pick from the template; stored values
// are ignored. Older documents keep the template under "raw_text".
func (b *BlackCard) UnmarshalJSON(data []byte) error {
	type plain BlackCard
	aux := struct {
		*plain
		RawText string `json:"raw_text"`
	}{plain: (*plain)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	template := b.Template
	if template == "" {
		template = aux.RawText
	}
	b.SetTemplate(template)
	return nil
}

// New returns an empty deck ready for editing.
func New(name, displayName, language string) Deck {
	d := Deck{
		FormatVersion: FormatVersion,
		Meta: Meta{
			Name:        name,
			DisplayName: displayName,
			Language:    language,
		},
	}
	normalize(&d)
	return d
}
