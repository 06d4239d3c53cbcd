package deck

import "strings"

const (
	DisplayBlank = "__________"
	FilledBlank  = "____"
)

// DisplayText is the prompt as shown before any answer is chosen.
func (b BlackCard) DisplayText() string {
	return placeholderPattern.ReplaceAllString(b.Template, DisplayBlank)
}

// Fill completes the prompt with answers in slot order, using the form each slot
// asks for. With no slots the first answer is appended to the prompt. Slots
// left without an answer are blanked.
func (b BlackCard) Fill(answers []WhiteCard) string {
	slots := DetectSlots(b.Template)
	if len(slots) == 0 {
		if len(answers) == 0 {
			return b.Template
		}
		return strings.TrimRight(b.Template, " ") + " " + answers[0].Nominative()
	}

	var sb strings.Builder
	last := 0
	for i, loc := range placeholderPattern.FindAllStringIndex(b.Template, -1) {
		sb.WriteString(b.Template[last:loc[0]])
		if i < len(answers) {
			sb.WriteString(answers[i].Form(slots[i]))
		} else {
			sb.WriteString(FilledBlank)
		}
		last = loc[1]
	}
	sb.WriteString(b.Template[last:])
	return sb.String()
}
