package ui

import (
	"strings"

	"github.com/faizmokh/questlog/internal/quest"
	"github.com/faizmokh/questlog/internal/render"
)

const hereText = "YOU ARE HERE"

// RenderDocument draws doc for a terminal of the given width. It follows the
// same past/future rule as the HTML renderer: everything from the first marker
// on is future.
func RenderDocument(doc quest.Document, width int) string {
	if len(doc.Lines) == 0 {
		return pastStyle.Render("(empty quest)")
	}

	var b strings.Builder
	future := false
	for i, line := range doc.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line.IsMarker() {
			future = true
			b.WriteString(hereStyle.Width(max(width, len(hereText))).Render(hereText))
			continue
		}
		b.WriteString(stageLine(line.Stage, future))
	}
	return b.String()
}

func stageLine(stage quest.Stage, future bool) string {
	bullet := "●"
	style := pastStyle
	if future {
		bullet = "○"
		style = futureStyle
	}
	if stage.Tags.Important() {
		style = importantStyle
	}

	parts := []string{style.Render(bullet)}
	if tags := tagText(stage.Tags); tags != "" {
		parts = append(parts, tags)
	}
	parts = append(parts, style.Render(stage.Action))
	return strings.Join(parts, " ")
}

func tagText(tags quest.TagList) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		if sym, ok := render.SymbolFor(tag); ok {
			parts = append(parts, sym.Text)
			continue
		}
		parts = append(parts, otherTagStyle.Render(tag.Label))
	}
	return strings.Join(parts, " ")
}
