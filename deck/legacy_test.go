package deck

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportLegacy(t *testing.T) {
	t.Parallel()

	white := strings.NewReader("ogień\n\n mag | maga | magowi | maga | magiem | magu | magu \n")
	black := strings.NewReader("<B> to moja pasja.\nZamiast <D> wolę <B>.\n")

	d, err := ImportLegacy("base", white, black, &sequenceIdGen{})
	require.NoError(t, err)

	assert.Equal(t, "base", d.Meta.Name)
	assert.Equal(t, FormatVersion, d.FormatVersion)
	require.Len(t, d.Cards.White, 2)
	assert.Equal(t, "ogień", d.Cards.White[0].Form(Accusative))
	assert.Equal(t, "magiem", d.Cards.White[1].Form(Instrumental))
	assert.Equal(t, "w-1", d.Cards.White[0].ID)

	require.Len(t, d.Cards.Black, 2)
	assert.Equal(t, 2, d.Cards.Black[1].Pick)
	assert.Equal(t, "b-3", d.Cards.Black[0].ID)

	assert.NoError(t, d.Validate())
}

func TestImportLegacy_NilReaders(t *testing.T) {
	t.Parallel()

	d, err := ImportLegacy("only-black", nil, strings.NewReader("Pytanie?"), &sequenceIdGen{})
	require.NoError(t, err)
	assert.Empty(t, d.Cards.White)
	assert.Len(t, d.Cards.Black, 1)
}

func TestCheckLegacyWhite(t *testing.T) {
	t.Parallel()

	input := "ogień\na|b|c\n\na|b|c|d|e|f|g\na|b\n"
	issues, err := CheckLegacyWhite(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, LineIssue{Line: 2, Parts: 3, Text: "a|b|c"}, issues[0])
	assert.Equal(t, 5, issues[1].Line)
	assert.Contains(t, issues[1].String(), "line 5: 2 forms")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sampleDeck().Validate())

	d := sampleDeck()
	d.Meta.Name = "bad name!"
	d.Cards.White = append(d.Cards.White, WhiteCard{ID: "w1", Forms: Forms{Accusative: "x"}})
	d.Cards.Black = append(d.Cards.Black, BlackCard{Template: "<Q>"})

	err := d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, err, ErrDuplicateCardId)
	assert.ErrorIs(t, err, ErrMissingNominative)
	assert.ErrorIs(t, err, ErrMissingCardId)
	assert.ErrorIs(t, err, ErrUnknownCase)

	d = sampleDeck()
	d.Meta.Name = ""
	assert.True(t, errors.Is(d.Validate(), ErrMissingName))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	d := sampleDeck()
	d.Cards.Black[0].Tags = []string{"nsfw"}

	assert.Len(t, FilterWhite(d.Cards.White, FilterOptions{}), 2)
	assert.Len(t, FilterWhite(d.Cards.White, FilterOptions{Themes: []string{"magia"}}), 1)
	assert.Len(t, FilterWhite(d.Cards.White, FilterOptions{Query: "OGNI"}), 1)
	assert.Len(t, FilterWhite(d.Cards.White, FilterOptions{Tags: []string{"core", "other"}}), 1)

	black := FilterBlack(d.Cards.Black, FilterOptions{Tags: []string{"nsfw"}})
	require.Len(t, black, 1)
	assert.Equal(t, "b1", black[0].ID)
	assert.Len(t, FilterBlack(d.Cards.Black, FilterOptions{Query: "wolę"}), 1)
}
