// Package drill is the practice screen: it asks the engine for the
// next item, collects the answer, shows graded feedback, and offers
// an LLM explanation of mistakes.
package drill

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/engine"
	"github.com/verba-app/verba/internal/explain"
	"github.com/verba-app/verba/internal/grader"
	"github.com/verba-app/verba/internal/router"
	"github.com/verba-app/verba/internal/schedule"
	"github.com/verba-app/verba/internal/screen"
	"github.com/verba-app/verba/internal/store"
	"github.com/verba-app/verba/internal/ui/components"
	"github.com/verba-app/verba/internal/ui/layout"
	"github.com/verba-app/verba/internal/ui/theme"
)

// Deps carries the drill screen's wired services. Explain may be nil;
// the "why?" action is hidden then.
type Deps struct {
	Learner *store.Learner
	Repos   engine.Repos
	Engine  *engine.Engine
	Explain *explain.Service
}

// ruleExampleCap limits how many usage examples a rule card shows.
const ruleExampleCap = 2

type phase int

const (
	phaseLoading phase = iota
	phaseRule
	phaseQuestion
	phaseGrading
	phaseFeedback
	phaseExplaining
	phaseDone
	phaseError
)

type questionMsg struct {
	q     *engine.Question
	done  *engine.Done
	rules []content.Rule
}

type feedbackMsg struct {
	fb    *engine.Feedback
	rules []content.Rule
}

type explanationMsg struct {
	ex  *explain.Explanation
	err error
}

type advancedMsg struct {
	err error
}

type errMsg struct {
	err error
}

// DrillScreen runs one practice sitting.
type DrillScreen struct {
	deps  Deps
	phase phase

	q         *engine.Question
	ruleCards []content.Rule
	done      *engine.Done

	input   components.TextInput
	options components.OptionList

	fb          *engine.Feedback
	fbRules     []content.Rule
	explanation string
	flipped     bool

	answered int
	correct  int

	err error
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a new DrillScreen.
func New(deps Deps) *DrillScreen {
	return &DrillScreen{deps: deps, phase: phaseLoading}
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.loadNext()
}

// loadNext asks the engine for the next item. Rules for the opening of
// a detour ride along so the learner reads them before the prompt.
func (d *DrillScreen) loadNext() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		q, done, err := d.deps.Engine.CurrentItem(ctx, d.deps.Learner.ID)
		if err != nil {
			return errMsg{err: err}
		}
		if q == nil {
			return questionMsg{done: done}
		}
		var rules []content.Rule
		if q.ShowRuleFirst {
			rules = d.fetchRules(ctx, q.RuleKeys, q.Due.UnitKey)
		}
		return questionMsg{q: q, rules: rules}
	}
}

// fetchRules loads rules by key with a whole-unit fallback. Rules are
// remediation garnish, so lookup errors degrade to no card.
func (d *DrillScreen) fetchRules(ctx context.Context, ruleKeys []string, unitKey string) []content.Rule {
	if len(ruleKeys) > 0 {
		if rules, err := d.deps.Repos.Content.RulesByKeys(ctx, ruleKeys); err == nil && len(rules) > 0 {
			return rules
		}
	}
	if unitKey == "" {
		return nil
	}
	rules, err := d.deps.Repos.Content.RulesByUnit(ctx, unitKey)
	if err != nil {
		return nil
	}
	return rules
}

func (d *DrillScreen) submit(answer string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		fb, err := d.deps.Engine.SubmitAnswer(ctx, d.deps.Learner.ID, answer)
		if err != nil {
			return errMsg{err: err}
		}
		var rules []content.Rule
		if fb.ShowRules {
			rules = d.fetchRules(ctx, fb.RuleKeys, fb.UnitKey)
		}
		return feedbackMsg{fb: fb, rules: rules}
	}
}

func (d *DrillScreen) advance() tea.Cmd {
	flipped := d.flipped
	return func() tea.Msg {
		ctx := context.Background()
		if err := d.deps.Engine.Advance(ctx, d.deps.Learner.ID, flipped); err != nil {
			return advancedMsg{err: err}
		}
		return advancedMsg{}
	}
}

func (d *DrillScreen) explainCmd() tea.Cmd {
	fb := d.fb
	mode := grader.ParseStrictness(d.deps.Learner.Strictness, grader.StrictnessNormal)
	return func() tea.Msg {
		ctx := context.Background()
		ex, err := d.deps.Explain.Explain(ctx, explain.Request{
			UnitKey:   fb.UnitKey,
			Prompt:    fb.Prompt,
			Canonical: fb.Canonical,
			Answer:    fb.Answer,
			Verdict:   fb.Verdict,
			Mode:      mode,
			AttemptID: fb.AttemptID,
		})
		return explanationMsg{ex: ex, err: err}
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		d.q = msg.q
		d.ruleCards = msg.rules
		d.fb = nil
		d.fbRules = nil
		d.explanation = ""
		d.flipped = false

		if msg.done != nil {
			d.done = msg.done
			d.phase = phaseDone
			return d, nil
		}
		if len(msg.rules) > 0 {
			d.phase = phaseRule
			return d, nil
		}
		return d, d.startQuestion()

	case feedbackMsg:
		d.fb = msg.fb
		d.fbRules = msg.rules
		d.phase = phaseFeedback
		d.answered++
		if msg.fb.EffectiveCorrect {
			d.correct++
		}
		if !d.q.IsChoice {
			d.input.Submit(msg.fb.EffectiveCorrect)
		}
		return d, nil

	case explanationMsg:
		d.phase = phaseFeedback
		if msg.err != nil {
			d.explanation = "Explanation unavailable: " + msg.err.Error()
			return d, nil
		}
		d.explanation = msg.ex.Text
		if msg.ex.VerdictFlip && !d.fb.EffectiveCorrect {
			// The model overturned the grade; the scheduler will count
			// this answer as correct.
			d.flipped = true
			d.correct++
		}
		return d, nil

	case advancedMsg:
		if msg.err != nil {
			d.err = msg.err
			d.phase = phaseError
			return d, nil
		}
		d.phase = phaseLoading
		return d, d.loadNext()

	case errMsg:
		d.err = msg.err
		d.phase = phaseError
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d.updateInputs(msg)
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch d.phase {
	case phaseRule:
		if msg.String() == "enter" {
			return d, d.startQuestion()
		}

	case phaseQuestion:
		if d.q.IsChoice {
			var cmd tea.Cmd
			d.options, cmd = d.options.Update(msg)
			if d.options.Submitted {
				d.phase = phaseGrading
				return d, d.submit(d.options.Answer())
			}
			return d, cmd
		}
		if msg.String() == "enter" {
			answer := strings.TrimSpace(d.input.Value())
			if answer == "" {
				return d, nil
			}
			d.phase = phaseGrading
			return d, d.submit(answer)
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd

	case phaseFeedback:
		switch msg.String() {
		case "enter":
			return d, d.advance()
		case "w":
			if d.deps.Explain != nil && d.explanation == "" {
				d.phase = phaseExplaining
				return d, d.explainCmd()
			}
		}

	case phaseDone, phaseError:
		switch msg.String() {
		case "enter", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return d, nil
}

// startQuestion arms the answer widget for the pending question.
func (d *DrillScreen) startQuestion() tea.Cmd {
	d.phase = phaseQuestion
	if d.q.IsChoice {
		d.options = components.NewOptionList(d.q.Options, d.q.MultiSelect)
		return nil
	}
	d.input = components.NewTextInput("type your answer", 200)
	return d.input.Init()
}

func (d *DrillScreen) updateInputs(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.phase != phaseQuestion || d.q == nil || d.q.IsChoice {
		return d, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) View(width, height int) string {
	var body string
	switch d.phase {
	case phaseLoading:
		body = theme.Hint.Render("loading...")
	case phaseRule:
		body = d.ruleView()
	case phaseQuestion, phaseGrading:
		body = d.questionView()
	case phaseFeedback, phaseExplaining:
		body = d.feedbackView()
	case phaseDone:
		body = d.doneView()
	case phaseError:
		body = theme.Incorrect.Render("Something went wrong: "+d.err.Error()) + "\n\n" +
			theme.Hint.Render("enter to go back")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (d *DrillScreen) badge() string {
	if d.q == nil {
		return ""
	}
	if d.q.Source == engine.SourcePlacement {
		return theme.Subtitle.Render("PLACEMENT")
	}
	label := strings.ToUpper(string(d.q.Due.Kind))
	switch d.q.Due.Kind {
	case schedule.KindDetour:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)
	case schedule.KindRevisit:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label)
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)
	}
}

func (d *DrillScreen) ruleView() string {
	var sections []string
	sections = append(sections, d.badge(), "")
	sections = append(sections, theme.Body.Render("Before you answer, read this:"), "")
	sections = append(sections, renderRules(d.ruleCards, false), "")
	sections = append(sections, theme.Hint.Render("enter to continue"))
	return strings.Join(sections, "\n")
}

func (d *DrillScreen) questionView() string {
	var sections []string
	header := d.badge()
	if d.q.Source == engine.SourceDue && d.q.ShownTotal > 0 {
		header += theme.Hint.Render(fmt.Sprintf("  %s · item %d/%d",
			d.q.Due.UnitKey, d.q.ShownIndex, d.q.ShownTotal))
	}
	sections = append(sections, header, "")

	if d.q.Instruction != "" {
		sections = append(sections, theme.Subtitle.Render(d.q.Instruction), "")
	}
	sections = append(sections, theme.Body.Bold(true).Render(d.q.Prompt), "")

	if d.q.IsChoice {
		sections = append(sections, d.options.View())
	} else {
		sections = append(sections, d.input.View())
	}
	if d.phase == phaseGrading {
		sections = append(sections, "", theme.Hint.Render("checking..."))
	}
	return strings.Join(sections, "\n")
}

func (d *DrillScreen) feedbackView() string {
	var sections []string

	switch {
	case d.flipped:
		sections = append(sections, theme.Correct.Render("✓ Accepted after review"))
	case d.fb.Verdict == grader.VerdictCorrect:
		sections = append(sections, theme.Correct.Render("✓ Correct"))
	case d.fb.Verdict == grader.VerdictAlmost:
		sections = append(sections, theme.Almost.Render("~ Almost"))
	default:
		sections = append(sections, theme.Incorrect.Render("✗ Not quite"))
	}

	if d.fb.Verdict != grader.VerdictCorrect && d.fb.Canonical != "" {
		sections = append(sections, "", theme.Body.Render("Answer: ")+
			theme.Body.Bold(true).Render(d.fb.Canonical))
	}
	if d.fb.Note != "" {
		sections = append(sections, theme.Hint.Render(d.fb.Note))
	}

	if len(d.fbRules) > 0 {
		sections = append(sections, "", renderRules(d.fbRules, true))
	}

	switch {
	case d.phase == phaseExplaining:
		sections = append(sections, "", theme.Hint.Render("asking for an explanation..."))
	case d.explanation != "":
		sections = append(sections, "", theme.Card.Render(wrap(d.explanation, 60)))
	}

	return strings.Join(sections, "\n")
}

func (d *DrillScreen) doneView() string {
	var sections []string
	sections = append(sections, theme.Title.Render("All done for now"), "")
	if d.answered > 0 {
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("%d/%d correct this sitting", d.correct, d.answered)))
	}
	if !d.done.NextDueAt.IsZero() {
		sections = append(sections, theme.Hint.Render(
			"next review "+d.done.NextDueAt.Local().Format("Mon, Jan 2 at 15:04")))
	} else {
		sections = append(sections, theme.Hint.Render("nothing scheduled yet"))
	}
	sections = append(sections, "", theme.Hint.Render("enter to go back"))
	return strings.Join(sections, "\n")
}

// renderRules draws the rule card: full text when a detour opens,
// short reminders after feedback, at most two examples each.
func renderRules(rules []content.Rule, short bool) string {
	var lines []string
	for _, r := range rules {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wrap(r.DisplayText(short), 56))
		examples := r.Examples
		if len(examples) > ruleExampleCap {
			examples = examples[:ruleExampleCap]
		}
		for _, ex := range examples {
			lines = append(lines, theme.Hint.Render("  "+ex))
		}
	}
	return theme.RuleCard.Render(strings.Join(lines, "\n"))
}

// wrap is a simple word wrapper for card bodies.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			b.WriteString(line)
			b.WriteString("\n")
			line = w
			continue
		}
		line += " " + w
	}
	b.WriteString(line)
	return b.String()
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseRule:
		return []layout.KeyHint{{Key: "enter", Description: "continue"}}
	case phaseQuestion:
		if d.q != nil && d.q.IsChoice {
			hints := []layout.KeyHint{{Key: "↑/↓", Description: "move"}}
			if d.q.MultiSelect {
				hints = append(hints, layout.KeyHint{Key: "space", Description: "toggle"})
			}
			return append(hints, layout.KeyHint{Key: "enter", Description: "answer"})
		}
		return []layout.KeyHint{{Key: "enter", Description: "answer"}}
	case phaseFeedback:
		hints := []layout.KeyHint{{Key: "enter", Description: "next"}}
		if d.deps.Explain != nil && d.explanation == "" {
			hints = append(hints, layout.KeyHint{Key: "w", Description: "why?"})
		}
		return hints
	case phaseDone, phaseError:
		return []layout.KeyHint{{Key: "enter", Description: "back"}}
	}
	return nil
}

func (d *DrillScreen) Title() string {
	return "Practice"
}
