// Package home is the main menu: it shows how much work is waiting and
// routes to the drill, stats, and history screens.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/engine"
	"github.com/verba-app/verba/internal/explain"
	"github.com/verba-app/verba/internal/router"
	"github.com/verba-app/verba/internal/screen"
	"github.com/verba-app/verba/internal/screens/drill"
	"github.com/verba-app/verba/internal/screens/history"
	"github.com/verba-app/verba/internal/screens/stats"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/ui/components"
	"github.com/verba-app/verba/internal/ui/theme"
)

// Deps carries the home screen's wired services.
type Deps struct {
	Learner *store.Learner
	Repos   engine.Repos
	Engine  *engine.Engine
	Explain *explain.Service
}

// DueCountMsg tells the root model how many items are currently due,
// for the header badge.
type DueCountMsg struct {
	Count int
}

type overviewMsg struct {
	dueNow        int
	nextDue       time.Time
	hasNext       bool
	placementDone bool
	attempts      int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu

	overview overviewMsg
	loaded   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(drill.Deps{
					Learner: deps.Learner,
					Repos:   deps.Repos,
					Engine:  deps.Engine,
					Explain: deps.Explain,
				})}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Learner, deps.Repos.Attempts, deps.Repos.Due)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Learner, deps.Repos.Attempts)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadOverview()
}

// loadOverview gathers the numbers for the status card.
func (h *HomeScreen) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		var ov overviewMsg
		if due, err := h.deps.Repos.Due.DueNow(ctx, h.deps.Learner.ID, now); err == nil {
			ov.dueNow = len(due)
		}
		if next, ok, err := h.deps.Repos.Due.NextDueAt(ctx, h.deps.Learner.ID, now); err == nil && ok {
			ov.nextDue = next
			ov.hasNext = true
		}
		if st, err := h.deps.Repos.Learners.State(ctx, h.deps.Learner.ID); err == nil {
			ov.placementDone = st.PlacementDone
		}
		if unitStats, err := h.deps.Repos.Attempts.UnitStats(ctx, h.deps.Learner.ID); err == nil {
			for _, s := range unitStats {
				ov.attempts += s.Total
			}
		}
		return ov
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		h.overview = msg
		h.loaded = true
		return h, func() tea.Msg { return DueCountMsg{Count: msg.dueNow} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("VERBA")
	subtitle := theme.Subtitle.Render("adaptive grammar practice")
	sections = append(sections, title, subtitle, "")

	if h.loaded {
		sections = append(sections, h.renderOverview(), "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderOverview() string {
	ov := h.overview

	var lines []string
	switch {
	case ov.dueNow > 0:
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%d item(s) waiting for you", ov.dueNow)))
	case !ov.placementDone:
		lines = append(lines, theme.Body.Render("Placement test in progress"))
	case ov.hasNext:
		lines = append(lines, theme.Body.Render("All caught up"))
		lines = append(lines, theme.Hint.Render("next review "+ov.nextDue.Local().Format("Mon 15:04")))
	default:
		lines = append(lines, theme.Body.Render("All caught up"))
	}
	if ov.attempts > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%d answers so far", ov.attempts)))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
