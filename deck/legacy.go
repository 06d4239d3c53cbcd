package deck

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Legacy decks are two UTF-8 text files per deck: "<name>.white" with one card
// per line, either a single word or seven pipe-separated forms in Cases order,
// and "<name>.black" with one template per line.

const legacyFormSeparator = "|"

func ParseLegacyWhite(r io.Reader, idGen IdGenerator) ([]WhiteCard, error) {
	cards := []WhiteCard{}
	err := eachLine(r, func(_ int, line string) {
		parts := splitForms(line)
		if len(parts) < len(Cases) {
			cards = append(cards, NewWhiteCard(idGen.Generate(WhiteIdPrefix), parts[0]))
			return
		}
		card := NewWhiteCard(idGen.Generate(WhiteIdPrefix), parts[0])
		for i, c := range Cases {
			card.Forms[c] = parts[i]
		}
		cards = append(cards, card)
	})
	return cards, err
}

func ParseLegacyBlack(r io.Reader, idGen IdGenerator) ([]BlackCard, error) {
	cards := []BlackCard{}
	err := eachLine(r, func(_ int, line string) {
		cards = append(cards, NewBlackCard(idGen.Generate(BlackIdPrefix), line))
	})
	return cards, err
}

// ImportLegacy builds a deck named name from a pair of legacy files. Either
// reader may be nil.
func ImportLegacy(name string, white, black io.Reader, idGen IdGenerator) (Deck, error) {
	d := New(name, name, "pl")
	if white != nil {
		cards, err := ParseLegacyWhite(white, idGen)
		if err != nil {
			return Deck{}, fmt.Errorf("reading white cards: %w", err)
		}
		d.Cards.White = cards
	}
	if black != nil {
		cards, err := ParseLegacyBlack(black, idGen)
		if err != nil {
			return Deck{}, fmt.Errorf("reading black cards: %w", err)
		}
		d.Cards.Black = cards
	}
	return d, nil
}

// LineIssue points at a legacy white-card line whose form count is neither 1 nor 7.
type LineIssue struct {
	Line  int
	Parts int
	Text  string
}

func (li LineIssue) String() string {
	return fmt.Sprintf("line %d: %d forms instead of 1 or %d: %s", li.Line, li.Parts, len(Cases), li.Text)
}

func CheckLegacyWhite(r io.Reader) ([]LineIssue, error) {
	issues := []LineIssue{}
	err := eachLine(r, func(n int, line string) {
		parts := strings.Split(line, legacyFormSeparator)
		if len(parts) != 1 && len(parts) != len(Cases) {
			issues = append(issues, LineIssue{Line: n, Parts: len(parts), Text: line})
		}
	})
	return issues, err
}

func splitForms(line string) []string {
	parts := strings.Split(line, legacyFormSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// eachLine calls fn with the 1-based number and trimmed text of every non-blank line.
func eachLine(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(n, line)
	}
	return sc.Err()
}
