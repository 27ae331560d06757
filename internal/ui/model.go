package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/questlog/internal/files"
	"github.com/faizmokh/questlog/internal/quest"
)

const (
	headerHeight = 2
	footerHeight = 3
)

// Model owns Bubble Tea state for the quest viewer.
type Model struct {
	ctx  context.Context
	path string

	doc      quest.Document
	viewport viewport.Model
	width    int
	ready    bool

	loading    bool
	statusLine string
	errorLine  string
}

type documentLoadedMsg struct {
	doc quest.Document
	err error
}

// NewModel seeds a viewer for the quest file at path.
func NewModel(ctx context.Context, path string) Model {
	return Model{
		ctx:        ctx,
		path:       path,
		viewport:   viewport.New(80, 20),
		width:      80,
		loading:    true,
		statusLine: "Loading quest...",
	}
}

// Init loads the quest file.
func (m Model) Init() tea.Cmd {
	return m.loadDocumentCmd()
}

// Update wires viewer state transitions from input and load results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadDocumentCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
	m.ready = true
	m.viewport.SetContent(RenderDocument(m.doc, m.width))
	return m, nil
}

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// Keep showing the last good document.
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", filepath.Base(m.path), msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.doc = msg.doc
	m.errorLine = ""
	m.statusLine = summary(msg.doc)
	m.viewport.SetContent(RenderDocument(m.doc, m.width))
	return m, nil
}

func (m Model) loadDocumentCmd() tea.Cmd {
	ctx, path := m.ctx, m.path
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return documentLoadedMsg{err: err}
		}
		text, err := files.ReadQuest(path)
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		doc, err := quest.Parse(text)
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		return documentLoadedMsg{doc: doc}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(filepath.Base(m.path)))
	b.WriteString("\n\n")

	if m.loading && len(m.doc.Lines) == 0 {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("j/k scroll  pgup/pgdn page  r reload  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func summary(doc quest.Document) string {
	stages, done := 0, 0
	future := false
	for _, line := range doc.Lines {
		if line.IsMarker() {
			future = true
			continue
		}
		stages++
		if !future {
			done++
		}
	}
	return fmt.Sprintf("%d of %d stage%s behind you", done, stages, plural(stages))
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
