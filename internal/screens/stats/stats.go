// Package stats shows per-unit accuracy and what is on the schedule.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/router"
	"github.com/verba-app/verba/internal/schedule"
	"github.com/verba-app/verba/internal/screen"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/ui/components"
	"github.com/verba-app/verba/internal/ui/layout"
	"github.com/verba-app/verba/internal/ui/theme"
)

type statsLoadedMsg struct {
	Units  []store.UnitStat
	Active []schedule.DueItem
	Err    error
}

// StatsScreen displays per-unit totals and the active schedule.
type StatsScreen struct {
	learner  *store.Learner
	attempts store.AttemptRepo
	due      store.DueRepo

	units  []store.UnitStat
	active []schedule.DueItem
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(learner *store.Learner, attempts store.AttemptRepo, due store.DueRepo) *StatsScreen {
	return &StatsScreen{learner: learner, attempts: attempts, due: due}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		units, err := s.attempts.UnitStats(ctx, s.learner.ID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		active, err := s.due.Active(ctx, s.learner.ID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Units: units, Active: active}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.units = msg.Units
			s.active = msg.Active
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if len(s.units) == 0 && len(s.active) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to show yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.units) > 0 {
		center(&b, width, theme.Subtitle.Render("BY UNIT"))
		b.WriteString("\n")
		for _, u := range s.units {
			var accuracy float64
			if u.Total > 0 {
				accuracy = float64(u.Correct) / float64(u.Total)
			}
			label := fmt.Sprintf("%-24s  %3d answered", u.UnitKey, u.Total)
			bar := components.NewProgressBar(label, accuracy, true, 60)
			center(&b, width, bar.View())
		}
		b.WriteString("\n")
	}

	if len(s.active) > 0 {
		center(&b, width, theme.Subtitle.Render("SCHEDULED"))
		b.WriteString("\n")
		for _, d := range s.active {
			line := fmt.Sprintf("%-24s  %-8s  %s",
				d.UnitKey, strings.ToUpper(string(d.Kind)), dueWhen(d.DueAt))
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if !d.DueAt.After(time.Now()) {
				style = lipgloss.NewStyle().Foreground(theme.Accent)
			}
			center(&b, width, style.Render(line))
		}
	}

	return b.String()
}

func center(b *strings.Builder, width int, line string) {
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	b.WriteString("\n")
}

func dueWhen(t time.Time) string {
	if !t.After(time.Now()) {
		return "due now"
	}
	return "due " + t.Local().Format("Jan 02 15:04")
}
