package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/ui/theme"
)

// OptionList renders the options of a choice item. In single-select
// mode enter submits the highlighted option; in multi-select mode
// space toggles options and enter submits the checked set. Grading
// happens elsewhere, the component only collects the pick.
type OptionList struct {
	Options     []string
	MultiSelect bool

	Cursor    int
	Checked   map[int]bool
	Submitted bool
}

// NewOptionList creates an option list.
func NewOptionList(options []string, multiSelect bool) OptionList {
	return OptionList{
		Options:     options,
		MultiSelect: multiSelect,
		Checked:     make(map[int]bool),
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "space", " ":
		if o.MultiSelect {
			o.Checked[o.Cursor] = !o.Checked[o.Cursor]
		}
	case "enter":
		if !o.MultiSelect {
			o.Checked = map[int]bool{o.Cursor: true}
		}
		if len(o.picked()) > 0 {
			o.Submitted = true
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		cursor := "  "
		if i == o.Cursor && !o.Submitted {
			cursor = "▸ "
		}

		marker := ""
		if o.MultiSelect {
			if o.Checked[i] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%c)  %s", cursor, marker, 'a'+i, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case o.Submitted && o.Checked[i]:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case o.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if o.MultiSelect && !o.Submitted {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  space toggles, enter submits"))
		b.WriteString("\n")
	}

	return b.String()
}

// Answer returns the picked options joined the way the grader expects
// multi-valued answers.
func (o OptionList) Answer() string {
	return strings.Join(o.picked(), ", ")
}

func (o OptionList) picked() []string {
	var out []string
	for i, opt := range o.Options {
		if o.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}
