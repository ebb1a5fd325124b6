package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/engine"
	"github.com/verba-app/verba/internal/explain"
	"github.com/verba-app/verba/internal/router"
	"github.com/verba-app/verba/internal/screen"
	"github.com/verba-app/verba/internal/screens/home"
	"github.com/verba-app/verba/internal/screens/welcome"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/ui/layout"
)

// Options carries the wired dependencies for a TUI run. Explain may be
// nil when no LLM provider is configured; the drill screen then
// degrades to canonical-only feedback.
type Options struct {
	Learner *store.Learner
	Repos   engine.Repos
	Engine  *engine.Engine
	Explain *explain.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts     Options
	router   *router.Router
	width    int
	height   int
	dueCount int
}

// newAppModel creates the root model, opening on the splash screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Learner: opts.Learner,
			Repos:   opts.Repos,
			Engine:  opts.Engine,
			Explain: opts.Explain,
		})
	}
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.DueCountMsg:
		m.dueCount = msg.Count

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	learnerName := ""
	if m.opts.Learner != nil {
		learnerName = m.opts.Learner.Name
	}
	header := layout.RenderHeader(title, learnerName, m.dueCount, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Learner == nil {
		return fmt.Errorf("app: learner required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
