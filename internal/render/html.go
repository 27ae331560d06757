package render

import (
	"html"
	"strings"

	"github.com/faizmokh/questlog/internal/quest"
)

const (
	tagSeparator = "&nbsp;"
	hereBlock    = "<div class=\"stage-now future\">\n    YOU ARE HERE\n</div>"
)

// Options tweak the generated markup.
type Options struct {
	// Escape HTML-escapes action text and custom labels. Off by default: the
	// input is inserted verbatim.
	Escape bool
}

func (o Options) text(s string) string {
	if o.Escape {
		return html.EscapeString(s)
	}
	return s
}

// state is threaded from one line to the next.
type state struct {
	pastMarker bool
}

// step renders one line and returns the state for the following line.
func step(st state, line quest.Line, opts Options) (state, string) {
	if line.IsMarker() {
		return state{pastMarker: true}, hereBlock
	}
	return st, stageBlock(line.Stage, st.pastMarker, opts)
}

// HTML renders every line of doc, one block per line joined with newlines.
// Lines from the first marker onward carry the "future" class.
func HTML(doc quest.Document, opts Options) string {
	blocks := make([]string, 0, len(doc.Lines))
	st := state{}
	for _, line := range doc.Lines {
		var block string
		st, block = step(st, line, opts)
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func stageBlock(stage quest.Stage, future bool, opts Options) string {
	stageClass := "stage"
	if future {
		stageClass += " future"
	}
	actionClass := "quest-action"
	if stage.Tags.Important() {
		actionClass += " quest-important"
	}

	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(stageClass)
	b.WriteString("\">\n")
	if tags := tagContainer(stage.Tags, opts); tags != "" {
		b.WriteString("    ")
		b.WriteString(tags)
		b.WriteByte('\n')
	}
	b.WriteString(`    <span class="`)
	b.WriteString(actionClass)
	b.WriteString(`">`)
	b.WriteString(opts.text(stage.Action))
	b.WriteString("</span>\n</div>")
	return b.String()
}

// tagContainer returns "" for an empty list so the caller can drop the line.
func tagContainer(tags quest.TagList, opts Options) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, tagMarkup(tag, opts))
	}
	return `<div class="quest-options">` + strings.Join(parts, tagSeparator) + `</div>`
}

func tagMarkup(tag quest.Tag, opts Options) string {
	if sym, ok := SymbolFor(tag); ok {
		return `<span class="quest-image">` + sym.Entity + `</span>`
	}
	return `<em class="quest-other">` + opts.text(tag.Label) + `</em>`
}
