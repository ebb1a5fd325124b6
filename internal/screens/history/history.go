package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/router"
	"github.com/verba-app/verba/internal/screen"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/ui/layout"
	"github.com/verba-app/verba/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptData
	Err      error
}

// HistoryScreen displays the learner's recent answers.
type HistoryScreen struct {
	learner  *store.Learner
	attempts store.AttemptRepo

	rows     []store.AttemptData
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(learner *store.Learner, attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		learner:  learner,
		attempts: attempts,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rows, err := s.attempts.Recent(ctx, s.learner.ID, historyLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: rows}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, att := range s.rows {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		unit := att.UnitKey
		if unit == "" {
			unit = "placement"
		}
		line := fmt.Sprintf("%s%s  %s  %s  %s",
			prefix, att.CreatedAt.Format("Jan 02 15:04"), verdictMark(att), unit,
			truncate(att.Prompt, 40))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    answered: %q", att.Answer)
			if att.Flipped {
				detail += "  (accepted after review)"
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func verdictMark(att store.AttemptData) string {
	switch {
	case att.Flipped, att.Verdict == string(grader.VerdictCorrect):
		return lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case att.Verdict == string(grader.VerdictAlmost):
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("~")
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
