package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kutsal/dayscore/internal/tracker"
)

func newTestSession(t *testing.T) *tracker.Session {
	t.Helper()
	return tracker.NewSession(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// Week model
// ============================================================

func TestWeekDayNavigation(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)
	start := s.CurrentDate

	m, _ = m.update(keyRune('l'))
	if !s.CurrentDate.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("l should advance a day, got %v", s.CurrentDate)
	}

	m, _ = m.update(keyRune('h'))
	m, _ = m.update(keyRune('h'))
	if !s.CurrentDate.Equal(start.AddDate(0, 0, -1)) {
		t.Fatalf("h should go back a day, got %v", s.CurrentDate)
	}
}

func TestWeekDayNavigationReanchors(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)

	m, _ = m.update(keyRune('h'))
	if !s.History.WeekStart().Equal(s.CurrentDate.AddDate(0, 0, -6)) {
		t.Fatal("day navigation should re-derive the window")
	}
}

func TestWeekManualNavigation(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)
	start := s.History.WeekStart()

	m, _ = m.update(keyRune(']'))
	if !s.History.WeekStart().Equal(start.AddDate(0, 0, 7)) {
		t.Fatalf("] should advance the window a week, got %v", s.History.WeekStart())
	}

	m, _ = m.update(keyRune('['))
	m, _ = m.update(keyRune('['))
	if !s.History.WeekStart().Equal(start.AddDate(0, 0, -7)) {
		t.Fatalf("[ should retreat the window a week, got %v", s.History.WeekStart())
	}
}

func TestWeekTodayKey(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)

	m, _ = m.update(keyRune('h'))
	m, _ = m.update(keyRune('h'))
	m, _ = m.update(keyRune('t'))

	if !s.CurrentDate.Equal(tracker.Day(time.Now())) {
		t.Fatalf("t should jump to today, got %v", s.CurrentDate)
	}
}

func TestWeekBedtimeFormOpens(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)

	m, cmd := m.update(keyRune('b'))
	if !m.formActive || m.form == nil {
		t.Fatal("b should open the bedtime form")
	}
	if cmd == nil {
		t.Fatal("form init command expected")
	}
}

func TestWeekViewRenders(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("deep work", "1")
	s.CompleteTopTask()
	s.SetBedtime("23:30", false)

	m := newWeekModel(s)
	m.setSize(100, 40)

	out := m.view()
	if !strings.Contains(out, "1/6") {
		t.Fatalf("view should show work progress:\n%s", out)
	}
	if !strings.Contains(out, "23:30") {
		t.Fatalf("view should show the recorded bedtime:\n%s", out)
	}
	if !strings.Contains(out, "no data") {
		t.Fatalf("untouched days should render as absent:\n%s", out)
	}
}

func TestWeekViewShowsBreakdown(t *testing.T) {
	s := newTestSession(t)
	m := newWeekModel(s)
	m.setSize(100, 40)

	out := m.view()
	if !strings.Contains(out, "no bedtime recorded") {
		t.Fatalf("breakdown panel should render for an empty day:\n%s", out)
	}
}

// ============================================================
// Tasks model
// ============================================================

func TestTasksCompleteKey(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("deep work", "2")
	m := newTasksModel(s)

	m, cmd := m.update(keyRune('x'))
	if s.Queue.Len() != 1 {
		t.Fatalf("expected 1 task left, got %d", s.Queue.Len())
	}
	r := s.History.Get(s.CurrentDate)
	if r == nil || r.ActualWorkCount != 1 {
		t.Fatal("completion should credit the current day")
	}
	if cmd == nil {
		t.Fatal("completion should post a status message")
	}
	if msg, ok := cmd().(statusMsg); !ok || !strings.Contains(msg.text, "deep work") {
		t.Fatalf("unexpected status: %#v", cmd())
	}
}

func TestTasksCompleteEmptyQueue(t *testing.T) {
	s := newTestSession(t)
	m := newTasksModel(s)

	m, cmd := m.update(keyRune('x'))
	if cmd != nil {
		t.Fatal("completing an empty queue should do nothing")
	}
	if s.History.Len() != 0 {
		t.Fatal("no record should appear")
	}
	if m.cursor != 0 {
		t.Fatal("cursor should stay put")
	}
}

func TestTasksCursorBounds(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("a", "2")
	m := newTasksModel(s)

	m, _ = m.update(keyRune('k'))
	if m.cursor != 0 {
		t.Fatal("cursor should not go above the top")
	}
	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('j'))
	if m.cursor != 1 {
		t.Fatalf("cursor should stop at the last item, got %d", m.cursor)
	}
}

func TestTasksDeleteKey(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("a", "1")
	s.AddTask("b", "1")
	m := newTasksModel(s)

	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('d'))

	items := s.Queue.Items()
	if len(items) != 1 || items[0].Name != "a" {
		t.Fatalf("d should delete the item under the cursor, got %v", items)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp after delete, got %d", m.cursor)
	}
}

func TestTasksMoveUpKey(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("a", "1")
	s.AddTask("b", "1")
	m := newTasksModel(s)

	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('u'))

	items := s.Queue.Items()
	if items[0].Name != "b" || items[1].Name != "a" {
		t.Fatalf("u should promote one step, got %v", items)
	}
	if m.cursor != 0 {
		t.Fatal("cursor should follow the moved item")
	}
}

func TestTasksMoveTopKey(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("a", "1")
	s.AddTask("b", "1")
	s.AddTask("c", "1")
	m := newTasksModel(s)

	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('j'))
	m, _ = m.update(keyRune('g'))

	items := s.Queue.Items()
	if items[0].Name != "c" || items[1].Name != "a" || items[2].Name != "b" {
		t.Fatalf("g should move to top preserving the rest, got %v", items)
	}
	if m.cursor != 0 {
		t.Fatal("cursor should land on the head")
	}
}

func TestTasksNewFormOpens(t *testing.T) {
	s := newTestSession(t)
	m := newTasksModel(s)

	m, cmd := m.update(keyRune('n'))
	if !m.formActive || m.form == nil {
		t.Fatal("n should open the new-task form")
	}
	if cmd == nil {
		t.Fatal("form init command expected")
	}
	if *m.formQuantity != "1" {
		t.Fatalf("quantity should prefill from the session buffer, got %q", *m.formQuantity)
	}
}

func TestTasksViewMarksHead(t *testing.T) {
	s := newTestSession(t)
	s.AddTask("first", "1")
	s.AddTask("second", "1")
	m := newTasksModel(s)
	m.setSize(80, 30)

	out := m.view()
	if !strings.Contains(out, "▶") {
		t.Fatalf("head marker missing:\n%s", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("queue items missing:\n%s", out)
	}
}

func TestTasksViewEmpty(t *testing.T) {
	s := newTestSession(t)
	m := newTasksModel(s)
	m.setSize(80, 30)

	if !strings.Contains(m.view(), "Queue is empty") {
		t.Fatal("empty queue hint missing")
	}
}

// ============================================================
// Goals model
// ============================================================

func TestGoalsFormOpensWithCurrentValues(t *testing.T) {
	s := newTestSession(t)
	m := newGoalsModel(s)

	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.formActive || m.form == nil {
		t.Fatal("enter should open the goals form")
	}
	if cmd == nil {
		t.Fatal("form init command expected")
	}
	if *m.balance != "70" || *m.targetCount != "6" || *m.targetBedtime != "23:00" || *m.halflife != "30" {
		t.Fatalf("form should prefill current goals: %s %s %s %s",
			*m.balance, *m.targetCount, *m.targetBedtime, *m.halflife)
	}
}

func TestGoalsSaveAppliesParseableFields(t *testing.T) {
	s := newTestSession(t)
	m := newGoalsModel(s)

	*m.balance = "55"
	*m.targetCount = "four" // unparseable, retained
	*m.targetBedtime = "22:30"
	*m.bedtimeNextDay = false
	*m.halflife = "45"
	m.saveGoals()

	g := s.Goals
	if g.WorkSleepBalance != 55 {
		t.Fatalf("balance not applied: %d", g.WorkSleepBalance)
	}
	if g.TargetWorkCount != 6 {
		t.Fatalf("unparseable target should keep prior value, got %d", g.TargetWorkCount)
	}
	if g.TargetBedtime.Minutes != 22*60+30 {
		t.Fatalf("target bedtime not applied: %+v", g.TargetBedtime)
	}
	if g.BedtimeHalflife != 45 {
		t.Fatalf("halflife not applied: %d", g.BedtimeHalflife)
	}
}

func TestGoalsSaveResyncsCurrentDay(t *testing.T) {
	s := newTestSession(t)
	m := newGoalsModel(s)

	*m.balance = "50"
	*m.targetCount = "4"
	*m.targetBedtime = "22:00"
	*m.halflife = "20"
	m.saveGoals()

	r := s.History.Get(s.CurrentDate)
	if r == nil {
		t.Fatal("saving goals should lazily create the open day")
	}
	if r.Goals.WorkSleepBalance != 50 || r.Goals.TargetWorkCount != 4 {
		t.Fatalf("snapshot not resynced: %+v", r.Goals)
	}
}

func TestGoalsViewListsValues(t *testing.T) {
	s := newTestSession(t)
	m := newGoalsModel(s)
	m.setSize(80, 30)

	out := m.view()
	for _, want := range []string{"Work points", "Sleep points", "23:00", "30 min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("goals view missing %q:\n%s", want, out)
		}
	}
}

// ============================================================
// App
// ============================================================

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(newTestSession(t))
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(App)
}

func TestAppTabSwitching(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(keyRune('2'))
	a = model.(App)
	if a.activeView != viewTasks {
		t.Fatalf("2 should open tasks, got %v", a.activeView)
	}

	model, _ = a.Update(keyRune('3'))
	a = model.(App)
	if a.activeView != viewGoals {
		t.Fatalf("3 should open goals, got %v", a.activeView)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(App)
	if a.activeView != viewWeek {
		t.Fatalf("tab should cycle back to week, got %v", a.activeView)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}

func TestAppStatusMessage(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(statusMsg{text: "hello"})
	a = model.(App)
	if a.status != "hello" {
		t.Fatalf("status not set: %q", a.status)
	}
}

func TestAppExportPicker(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(keyRune('e'))
	a = model.(App)
	if !a.exportPicking {
		t.Fatal("e should open the export picker")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = model.(App)
	if a.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

func TestAppExportDone(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(exportDoneMsg{path: "/tmp/x.csv"})
	a = model.(App)
	if !strings.Contains(a.status, "/tmp/x.csv") {
		t.Fatalf("export path missing from status: %q", a.status)
	}
}

func TestAppViewRenders(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	for _, want := range []string{"dayscore", "Week", "Tasks", "Goals"} {
		if !strings.Contains(out, want) {
			t.Fatalf("app view missing %q", want)
		}
	}
}

func TestAppFooterShowsQueueHead(t *testing.T) {
	a := newTestApp(t)
	a.session.AddTask("deep work", "1")
	if !strings.Contains(a.View(), "deep work") {
		t.Fatal("footer should show the current task")
	}
}

func TestAppRoutesKeysToActiveView(t *testing.T) {
	a := newTestApp(t)
	a.session.AddTask("a", "1")

	model, _ := a.Update(keyRune('2'))
	a = model.(App)
	model, _ = a.Update(keyRune('x'))
	a = model.(App)

	if a.session.Queue.Len() != 0 {
		t.Fatal("x on the tasks view should complete the top task")
	}
}
