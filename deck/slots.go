package deck

import "regexp"

// placeholderPattern matches a bracketed run of uppercase letters, e.g. <B> or <MSC>.
var placeholderPattern = regexp.MustCompile(`<([A-Z]+)>`)

// DetectSlots scans template left to right and returns the case code of every
// placeholder in order of appearance. Duplicates are kept: "<B> oraz <B>" has two
// independent fill points. Tokens with an unknown code still count as a slot and
// fall back to the nominative form when filled.
func DetectSlots(template string) []Case {
	slots := []Case{}
	if template == "" {
		return slots
	}
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		slots = append(slots, Case(m[1]))
	}
	return slots
}

// DerivePick returns the number of white cards needed to complete a prompt with
// the given slots. A prompt without placeholders still takes one card.
func DerivePick(slots []Case) int {
	if len(slots) > 0 {
		return len(slots)
	}
	return 1
}
