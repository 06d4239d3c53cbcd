package deck

import (
	"slices"
	"strings"
)

// FilterOptions narrows a card listing. Empty fields match everything; Tags and
// Themes match when the card carries any one of them.
type FilterOptions struct {
	Tags   []string `form:"tag"`
	Themes []string `form:"theme"`
	Query  string   `form:"q"`
}

func (opt FilterOptions) matchTags(tags []string) bool {
	if len(opt.Tags) == 0 {
		return true
	}
	for _, t := range opt.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}
	return false
}

func (opt FilterOptions) matchText(texts ...string) bool {
	if opt.Query == "" {
		return true
	}
	q := strings.ToLower(opt.Query)
	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func FilterWhite(cards []WhiteCard, opt FilterOptions) []WhiteCard {
	out := []WhiteCard{}
	for _, c := range cards {
		if !opt.matchTags(c.Tags) {
			continue
		}
		if len(opt.Themes) > 0 && !slices.ContainsFunc(opt.Themes, func(t string) bool { return slices.Contains(c.Theme, t) }) {
			continue
		}
		forms := make([]string, 0, len(c.Forms))
		for _, f := range c.Forms {
			forms = append(forms, f)
		}
		if !opt.matchText(forms...) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterBlack ignores Themes; black cards have none.
func FilterBlack(cards []BlackCard, opt FilterOptions) []BlackCard {
	out := []BlackCard{}
	for _, c := range cards {
		if opt.matchTags(c.Tags) && opt.matchText(c.Template) {
			out = append(out, c)
		}
	}
	return out
}
