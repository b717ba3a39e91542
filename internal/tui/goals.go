package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kutsal/dayscore/internal/tracker"
)

type goalsModel struct {
	session *tracker.Session
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	balance        *string
	targetCount    *string
	targetBedtime  *string
	bedtimeNextDay *bool
	halflife       *string
}

func newGoalsModel(s *tracker.Session) goalsModel {
	bal, cnt, bed, hl := "", "", "", ""
	nextDay := false
	return goalsModel{
		session:        s,
		balance:        &bal,
		targetCount:    &cnt,
		targetBedtime:  &bed,
		bedtimeNextDay: &nextDay,
		halflife:       &hl,
	}
}

func (m *goalsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m goalsModel) update(msg tea.Msg) (goalsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return m.showForm()
		}
	}
	return m, nil
}

func (m goalsModel) showForm() (goalsModel, tea.Cmd) {
	g := m.session.Goals
	*m.balance = strconv.Itoa(g.WorkSleepBalance)
	*m.targetCount = strconv.Itoa(g.TargetWorkCount)
	*m.targetBedtime = fmt.Sprintf("%02d:%02d", g.TargetBedtime.Minutes/60, g.TargetBedtime.Minutes%60)
	*m.bedtimeNextDay = g.TargetBedtime.NextDay
	*m.halflife = strconv.Itoa(g.BedtimeHalflife)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work points (0-100, rest goes to sleep)").Value(m.balance),
			huh.NewInput().Title("Target tasks per day").Value(m.targetCount),
		).Title("Work"),
		huh.NewGroup(
			huh.NewInput().Title("Target bedtime (HH:MM)").Value(m.targetBedtime),
			huh.NewConfirm().Title("Past midnight?").
				Affirmative("Yes").Negative("No").
				Value(m.bedtimeNextDay),
			huh.NewInput().Title("Bedtime points halflife (min)").Value(m.halflife),
		).Title("Sleep"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m goalsModel) updateForm(msg tea.Msg) (goalsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.saveGoals()
		return m, func() tea.Msg {
			return statusMsg{text: "Goals updated for " + formatDate(m.session.CurrentDate)}
		}
	}

	return m, cmd
}

// saveGoals applies each parseable field; unparseable text keeps the
// previous value.
func (m goalsModel) saveGoals() {
	if v, err := strconv.Atoi(*m.balance); err == nil {
		m.session.SetWorkSleepBalance(v)
	}
	if v, err := strconv.Atoi(*m.targetCount); err == nil {
		m.session.SetTargetWorkCount(v)
	}
	if b, err := tracker.ParseBedtime(*m.targetBedtime, *m.bedtimeNextDay); err == nil {
		m.session.SetTargetBedtime(b)
	}
	if v, err := strconv.Atoi(*m.halflife); err == nil {
		m.session.SetBedtimeHalflife(v)
	}
}

func (m goalsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Edit Goals")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	g := m.session.Goals
	title := titleStyle.Render("Goals")
	hint := mutedStyle.Render("Press enter to edit. Edits apply to the open day, never to past days.")

	label := func(s string) string {
		return lipgloss.NewStyle().Width(26).Render(s)
	}

	rows := []string{
		title,
		"",
		fmt.Sprintf("  %s %s", label("Work points"), highlightStyle.Render(strconv.Itoa(g.WorkSleepBalance))),
		fmt.Sprintf("  %s %s", label("Sleep points"), highlightStyle.Render(strconv.Itoa(100-g.WorkSleepBalance))),
		fmt.Sprintf("  %s %s", label("Target tasks per day"), highlightStyle.Render(strconv.Itoa(g.TargetWorkCount))),
		fmt.Sprintf("  %s %s", label("Target bedtime"), highlightStyle.Render(g.TargetBedtime.String())),
		fmt.Sprintf("  %s %s", label("Bedtime points halflife"), highlightStyle.Render(fmt.Sprintf("%d min", g.BedtimeHalflife))),
		"",
		hint,
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
