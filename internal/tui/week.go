package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kutsal/dayscore/internal/tracker"
)

type weekModel struct {
	session *tracker.Session
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	bedtimeText    *string
	bedtimeNextDay *bool

	chart barchart.Model
}

func newWeekModel(s *tracker.Session) weekModel {
	text := s.Bedtime.Text
	nextDay := s.Bedtime.NextDay
	m := weekModel{
		session:        s,
		bedtimeText:    &text,
		bedtimeNextDay: &nextDay,
		chart:          barchart.New(60, 10),
	}
	m.buildChart()
	return m
}

func (m *weekModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.buildChart()
}

func (m weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.session.SetCurrentDate(m.session.CurrentDate.AddDate(0, 0, -1))
			m.buildChart()
			return m, nil

		case key.Matches(msg, keys.Right):
			m.session.SetCurrentDate(m.session.CurrentDate.AddDate(0, 0, 1))
			m.buildChart()
			return m, nil

		case key.Matches(msg, keys.Today):
			m.session.SetCurrentDate(time.Now())
			m.buildChart()
			return m, nil

		case key.Matches(msg, keys.PrevWeek):
			m.session.ViewPreviousWeek()
			m.buildChart()
			return m, nil

		case key.Matches(msg, keys.NextWeek):
			m.session.ViewNextWeek()
			m.buildChart()
			return m, nil

		case key.Matches(msg, keys.Bedtime):
			return m.showBedtimeForm()
		}
	}
	return m, nil
}

func (m weekModel) showBedtimeForm() (weekModel, tea.Cmd) {
	*m.bedtimeText = m.session.Bedtime.Text
	*m.bedtimeNextDay = m.session.Bedtime.NextDay

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Bedtime (HH:MM)").Value(m.bedtimeText),
			huh.NewConfirm().Title("Past midnight?").
				Affirmative("Yes").Negative("No").
				Value(m.bedtimeNextDay),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m weekModel) updateForm(msg tea.Msg) (weekModel, tea.Cmd) {
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
		m.session.Bedtime.Text = *m.bedtimeText
		m.session.Bedtime.NextDay = *m.bedtimeNextDay
		// Unparseable text leaves the day untouched, by policy.
		if m.session.SetBedtime(*m.bedtimeText, *m.bedtimeNextDay) {
			m.buildChart()
			return m, func() tea.Msg {
				return statusMsg{text: "Bedtime recorded for " + formatDate(m.session.CurrentDate)}
			}
		}
		return m, nil
	}

	return m, cmd
}

func (m *weekModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if m.height > 30 {
		chartHeight = 10
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, cell := range m.session.Week() {
		value := barchart.BarValue{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}
		if cell.Record != nil {
			score := cell.Record.Score()
			style := lipgloss.NewStyle().Foreground(colorPrimary)
			if score >= 100 {
				style = lipgloss.NewStyle().Foreground(colorSuccess)
			}
			value = barchart.BarValue{Name: "score", Value: float64(score), Style: style}
		}
		bars = append(bars, barchart.BarData{
			Label:  formatDay(cell.Date),
			Values: []barchart.BarValue{value},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m weekModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Bedtime — " + formatDate(m.session.CurrentDate))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	cells := m.session.Week()
	header := titleStyle.Render(fmt.Sprintf("Week of %s — %s",
		cells[0].Date.Format("Jan 02"), cells[6].Date.Format("Jan 02, 2006")))

	strip := m.renderStrip(cells)
	chartView := m.chart.View()

	breakdown := panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Score for "+formatDate(m.session.CurrentDate)),
			"",
			m.session.ScoreBreakdown(),
		),
	)

	nav := mutedStyle.Render("  ←/→: day  [/]: week  t: today  b: bedtime")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header), strip, chartView, breakdown, nav,
	)
}

func (m weekModel) renderStrip(cells []tracker.DayCell) string {
	var rendered []string
	for _, cell := range cells {
		style := dayCellStyle
		if cell.Date.Equal(m.session.CurrentDate) {
			style = currentDayCellStyle
		}

		day := formatDay(cell.Date)
		work := mutedStyle.Render("—")
		bed := mutedStyle.Render("—")
		score := mutedStyle.Render("no data")
		if r := cell.Record; r != nil {
			work = fmt.Sprintf("%d/%d", r.ActualWorkCount, r.Goals.TargetWorkCount)
			if r.ActualBedtime != nil {
				bed = r.ActualBedtime.String()
			}
			sc := r.Score()
			if sc >= 100 {
				score = scoreFullStyle.Render(fmt.Sprintf("%d", sc))
			} else {
				score = scoreStyle.Render(fmt.Sprintf("%d", sc))
			}
		}

		rendered = append(rendered, style.Render(
			lipgloss.JoinVertical(lipgloss.Center, day, work, bed, score),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
