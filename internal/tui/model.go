// Package tui implements the interactive grouping and rules browser.
package tui

import (
	"slices"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/privacy"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

// Page is a top-level view of the browser.
type Page int

// Pages.
const (
	PageGrouping Page = iota
	PageRules
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 4

// Options configures a Model.
type Options struct {
	Info                core.GroupingInfo
	Rules               []core.ScrubRule
	Labels              privacy.Labels
	Printer             *message.Printer
	ShowNonContributing bool
	Styles              output.Styles
}

// session is the rule state shared by copies of the model.
// Row callbacks write to it.
type session struct {
	rules     []core.ScrubRule
	inspected string
	deleted   []string
}

func (s *session) remove(id string) {
	i := slices.IndexFunc(s.rules, func(r core.ScrubRule) bool { return r.ID == id })
	if i < 0 {
		return
	}
	s.rules = slices.Delete(slices.Clone(s.rules), i, i+1)
	s.deleted = append(s.deleted, id)
	if s.inspected == id {
		s.inspected = ""
	}
}

// Model is the bubbletea model of the browser.
type Model struct {
	info    core.GroupingInfo
	labels  privacy.Labels
	printer *message.Printer
	styles  output.Styles
	state   *session

	show    bool
	variant int
	page    Page
	cursor  int

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// New creates a browser model.
func New(opts Options) Model {
	m := Model{
		info:     opts.Info,
		labels:   opts.Labels,
		printer:  opts.Printer,
		styles:   opts.Styles,
		state:    &session{rules: opts.Rules},
		show:     opts.ShowNonContributing,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.SwitchPage):
			if m.page == PageGrouping {
				m.page = PageRules
			} else {
				m.page = PageGrouping
			}
			m.viewport.GotoTop()
			m.refresh()
			return m, nil
		}

		if m.page == PageGrouping {
			if handled := m.updateGrouping(msg); handled {
				return m, nil
			}
		} else if handled := m.updateRules(msg); handled {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updateGrouping(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.show = !m.show
	case key.Matches(msg, m.keys.NextVariant):
		if len(m.info) == 0 {
			return true
		}
		m.variant = (m.variant + 1) % len(m.info)
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.PrevVariant):
		if len(m.info) == 0 {
			return true
		}
		m.variant = (m.variant - 1 + len(m.info)) % len(m.info)
		m.viewport.GotoTop()
	default:
		return false
	}
	m.refresh()
	return true
}

func (m *Model) updateRules(msg tea.KeyMsg) bool {
	rows := m.rows()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(rows) {
			rows[m.cursor].Edit()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(rows) {
			rows[m.cursor].Delete()
		}
		if n := len(m.state.rules); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
	case key.Matches(msg, m.keys.Back):
		m.state.inspected = ""
	default:
		return false
	}
	m.refresh()
	return true
}

// SetSize resizes the viewport to the terminal.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w
	m.viewport.Width = w
	m.viewport.Height = max(h-chromeHeight, 1)
	m.refresh()
}

// rows builds the rule list with callbacks bound to the session.
func (m Model) rows() []privacy.Row {
	s := m.state
	actions := privacy.Actions{
		OnEdit: func(id string) func() {
			return func() { s.inspected = id }
		},
		OnDelete: func(id string) func() {
			return func() { s.remove(id) }
		},
	}
	return privacy.BuildList(s.rules, m.labels, m.printer, actions)
}

func (m *Model) refresh() {
	if m.page == PageRules {
		m.viewport.SetContent(m.rulesContent())
		return
	}
	m.viewport.SetContent(m.groupingContent())
}

// ShowNonContributing reports whether non-contributing components are shown.
func (m Model) ShowNonContributing() bool { return m.show }

// Variant returns the key of the displayed variant.
func (m Model) Variant() string {
	if len(m.info) == 0 {
		return ""
	}
	return m.info[m.variant].Key
}

// Page returns the active page.
func (m Model) Page() Page { return m.page }

// Rules returns the rules left after deletions.
func (m Model) Rules() []core.ScrubRule { return m.state.rules }

// Deleted returns the IDs of the rules deleted in this session, in order.
func (m Model) Deleted() []string { return m.state.deleted }

// Inspected returns the ID of the rule opened with the edit action.
func (m Model) Inspected() string { return m.state.inspected }
