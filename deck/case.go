package deck

// Case is a grammatical-case code used both as a white-card form key and as a
// black-card placeholder.
type Case string

const (
	Nominative   Case = "M"
	Genitive     Case = "D"
	Dative       Case = "C"
	Accusative   Case = "B"
	Instrumental Case = "N"
	Locative     Case = "MSC"
	Vocative     Case = "W"
)

// Cases lists every known case code in canonical order. Legacy line files store
// forms in this order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Instrumental, Locative, Vocative}

func (c Case) Valid() bool {
	for _, known := range Cases {
		if c == known {
			return true
		}
	}
	return false
}

// Placeholder returns the template token for the case, e.g. "<B>".
func (c Case) Placeholder() string {
	return "<" + string(c) + ">"
}

func (c Case) String() string {
	return string(c)
}
