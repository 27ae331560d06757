package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/questlog/internal/logging"
	"github.com/faizmokh/questlog/internal/quest"
)

// Generate parses text and renders it. A parse failure aborts the whole
// conversion and no markup is returned.
func Generate(text string, opts Options) (string, error) {
	return NewGenerator(nil, opts).Generate(text)
}

// Generator is Generate with diagnostics.
type Generator struct {
	logger *log.Logger
	opts   Options
}

// NewGenerator wires a generator. A nil logger discards diagnostics.
func NewGenerator(logger *log.Logger, opts Options) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{logger: logger, opts: opts}
}

// Generate converts one quest file into an HTML fragment.
func (g *Generator) Generate(text string) (string, error) {
	doc, err := quest.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse quest: %w", err)
	}
	g.logger.Debug("parsed quest", "lines", len(doc.Lines), "markers", doc.Markers())
	if n := doc.Markers(); n > 1 {
		g.logger.Warn("multiple current-position markers", "count", n)
	}

	out := HTML(doc, g.opts)
	g.logger.Debug("generated", "html", out)
	g.logger.Info("generated", "bytes", len(out))
	return out, nil
}
