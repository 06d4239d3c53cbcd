package game

import "slices"

// Selection is the ordered set of hand cards chosen for the next submission.
// It is a value: every operation returns a new Selection and leaves the
// receiver untouched.
type Selection struct {
	hand     []string
	selected []string
	required int
}

// ArmSelection starts an empty selection over the given hand ids. required is
// clamped to at least one.
func ArmSelection(hand []string, required int) Selection {
	return Selection{
		hand:     slices.Clone(hand),
		selected: []string{},
		required: max(1, required),
	}
}

// Toggle removes id if it is selected, otherwise appends it. At capacity the
// oldest selection is evicted first. Ids outside the hand are ignored.
func (s Selection) Toggle(id string) Selection {
	if !slices.Contains(s.hand, id) {
		return s
	}
	next := s
	if i := slices.Index(s.selected, id); i >= 0 {
		next.selected = slices.Delete(slices.Clone(s.selected), i, i+1)
		return next
	}
	selected := slices.Clone(s.selected)
	if len(selected) >= s.required {
		selected = selected[len(selected)-s.required+1:]
	}
	next.selected = append(selected, id)
	return next
}

// Ordinal is the 1-based fill position of id, or 0 when it is not selected.
func (s Selection) Ordinal(id string) int {
	return slices.Index(s.selected, id) + 1
}

func (s Selection) Selected() []string {
	return slices.Clone(s.selected)
}

func (s Selection) Required() int {
	return s.required
}

func (s Selection) Len() int {
	return len(s.selected)
}

func (s Selection) CanSubmit() bool {
	return s.required > 0 && len(s.selected) == s.required
}

// Submit returns the chosen ids in fill order and an emptied selection. ok is
// false when the selection is not complete.
func (s Selection) Submit() (ids []string, next Selection, ok bool) {
	if !s.CanSubmit() {
		return nil, s, false
	}
	next = s
	next.selected = []string{}
	return slices.Clone(s.selected), next, true
}

// Reset empties the selection and sets a new target.
func (s Selection) Reset(required int) Selection {
	return ArmSelection(s.hand, required)
}

// retain keeps the current choices that are still in hand, in order.
func (s Selection) retain(hand []string) Selection {
	next := Selection{hand: slices.Clone(hand), required: s.required, selected: []string{}}
	for _, id := range s.selected {
		if slices.Contains(hand, id) {
			next.selected = append(next.selected, id)
		}
	}
	return next
}
