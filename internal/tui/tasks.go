package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kutsal/dayscore/internal/tracker"
)

type tasksModel struct {
	session *tracker.Session
	width   int
	height  int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName     *string
	formQuantity *string
}

func newTasksModel(s *tracker.Session) tasksModel {
	name := s.NewTask.Name
	quantity := s.NewTask.Quantity
	return tasksModel{
		session:      s,
		formName:     &name,
		formQuantity: &quantity,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		items := m.session.Queue.Items()

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(items)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.New):
			return m.showNewTaskForm()

		case key.Matches(msg, keys.Complete):
			front, _ := m.session.Queue.Front()
			if !m.session.CompleteTopTask() {
				return m, nil
			}
			if m.cursor >= m.session.Queue.Len() {
				m.cursor = max(0, m.session.Queue.Len()-1)
			}
			r := m.session.History.Get(m.session.CurrentDate)
			return m, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Done: %s (%d/%d today)",
					front.Name, r.ActualWorkCount, r.Goals.TargetWorkCount)}
			}

		case key.Matches(msg, keys.Delete):
			if m.cursor < len(items) {
				m.session.DeleteTask(items[m.cursor].ID)
				if m.cursor >= m.session.Queue.Len() {
					m.cursor = max(0, m.session.Queue.Len()-1)
				}
			}

		case key.Matches(msg, keys.MoveUp):
			if m.cursor < len(items) {
				m.session.MoveTaskUp(items[m.cursor].ID)
				if m.cursor > 0 {
					m.cursor--
				}
			}

		case key.Matches(msg, keys.MoveTop):
			if m.cursor < len(items) {
				m.session.MoveTaskToTop(items[m.cursor].ID)
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*m.formName = ""
	*m.formQuantity = m.session.NewTask.Quantity

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name of task").Value(m.formName),
			huh.NewInput().Title("Quantity").Value(m.formQuantity),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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
		m.session.NewTask.Name = *m.formName
		m.session.NewTask.Quantity = *m.formQuantity
		if *m.formName != "" {
			m.session.AddTask(*m.formName, *m.formQuantity)
		}
		return m, nil
	}

	return m, cmd
}

func (m tasksModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Task")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := titleStyle.Render("Planned Work — " + formatDate(m.session.CurrentDate))
	items := m.session.Queue.Items()

	if len(items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Queue is empty. Press n to plan a task."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, p := range items {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		marker := "  "
		if i == 0 {
			marker = accentStyle.Render("▶ ")
		}
		rows = append(rows, style.Render(cursor)+marker+style.Render(p.Name))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  x: done (top)  n: new  d: delete  u: up  g: top"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
