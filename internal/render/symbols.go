package render

import "github.com/faizmokh/questlog/internal/quest"

// Symbol is how a known tag is drawn: an HTML entity sequence for pages and
// the equivalent text for terminals.
type Symbol struct {
	Entity string
	Text   string
}

var symbols = map[quest.TagKind]Symbol{
	quest.TagEvent:    {Entity: "&#x2139;&#xFE0F;", Text: "\u2139\ufe0f"},
	quest.TagBoss:     {Entity: "&#x1F3C1;", Text: "\U0001F3C1"},
	quest.TagMiniboss: {Entity: "&#x1F47E;", Text: "\U0001F47E"},
	quest.TagFail:     {Entity: "&#x1F4A9;", Text: "\U0001F4A9"},
	quest.TagResearch: {Entity: "&#x1F9D1;&#x200D;&#x1F52C;", Text: "\U0001F9D1\u200d\U0001F52C"},
}

// SymbolFor returns the symbol of a known tag. ok is false for custom labels,
// which are drawn as their own text.
func SymbolFor(tag quest.Tag) (Symbol, bool) {
	if tag.Kind == quest.TagOther {
		return Symbol{}, false
	}
	sym, ok := symbols[tag.Kind]
	return sym, ok
}
