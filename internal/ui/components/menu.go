package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/ui/theme"
)

// MenuItem is one entry of a vertical menu. Disabled items render dimmed
// and the cursor skips over them.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven vertical menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.seek(0, 1)
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// seek walks from start in the given direction to the nearest enabled
// item, returning start when every item that way is disabled.
func (m Menu) seek(start, dir int) int {
	for i := start; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return start
}

// Update moves the cursor on up/down (or k/j) and fires the selected
// item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if next := m.seek(m.Selected-1, -1); !m.Items[next].Disabled {
			m.Selected = next
		}
	case "down", "j":
		if next := m.seek(m.Selected+1, 1); !m.Items[next].Disabled {
			m.Selected = next
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
				return m, it.Action()
			}
		}
	}
	return m, nil
}

// View renders the menu, one line per item.
func (m Menu) View() string {
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, it := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + it.Label))
		case it.Disabled:
			b.WriteString(dim.Render("    " + it.Label))
		default:
			b.WriteString(plain.Render("    " + it.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
