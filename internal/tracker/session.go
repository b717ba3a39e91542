package tracker

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewTaskInput is the free-text buffer behind the new-task form. Quantity
// stays text until AddTask parses it.
type NewTaskInput struct {
	Name     string
	Quantity string
}

// BedtimeInput is the free-text buffer behind the bedtime form.
type BedtimeInput struct {
	Text    string
	NextDay bool
}

// Session is the whole mutable state of one run: the day being edited,
// the input buffers, the task queue, the default goals and the recorded
// history. It is exclusively owned by the single event loop; every user
// command lands here as one synchronous mutation.
type Session struct {
	CurrentDate time.Time
	NewTask     NewTaskInput
	Bedtime     BedtimeInput
	Queue       TaskQueue
	Goals       Goals
	History     *History
}

// NewSession starts a session anchored on now's calendar date.
func NewSession(now time.Time) *Session {
	s := &Session{
		CurrentDate: Day(now),
		NewTask:     NewTaskInput{Quantity: "1"},
		Goals:       DefaultGoals(),
		History:     NewHistory(),
	}
	s.History.RecomputeWeekStart(s.CurrentDate)
	return s
}

// SetCurrentDate moves the edited day and re-anchors the week window.
func (s *Session) SetCurrentDate(d time.Time) {
	s.CurrentDate = Day(d)
	s.History.RecomputeWeekStart(s.CurrentDate)
}

// AddTask enqueues periods named after the buffer, one per parsed
// quantity. Unparseable quantity text falls back to 1, silently.
func (s *Session) AddTask(name, quantity string) {
	count, err := strconv.Atoi(quantity)
	if err != nil {
		count = 1
	}
	s.Queue.EnqueueMany(name, count)
}

func (s *Session) DeleteTask(id uuid.UUID)    { s.Queue.Remove(id) }
func (s *Session) MoveTaskToTop(id uuid.UUID) { s.Queue.MoveToFront(id) }
func (s *Session) MoveTaskUp(id uuid.UUID)    { s.Queue.MoveUp(id) }

// CompleteTopTask pops the head of the queue and credits one work unit
// to the current date's record, creating it from the session goals if
// needed. The increment happens only when something was actually popped;
// completing against an empty queue mutates nothing.
func (s *Session) CompleteTopTask() bool {
	if _, ok := s.Queue.PopFront(); !ok {
		return false
	}
	s.History.GetOrCreate(s.CurrentDate, s.Goals).ActualWorkCount++
	return true
}

// SetBedtime parses clock text and records the bedtime on the current
// date. Unparseable text leaves everything untouched — not even the day
// record is created.
func (s *Session) SetBedtime(text string, nextDay bool) bool {
	b, err := ParseBedtime(text, nextDay)
	if err != nil {
		return false
	}
	s.History.GetOrCreate(s.CurrentDate, s.Goals).ActualBedtime = &b
	return true
}

func (s *Session) ViewNextWeek()     { s.History.AdvanceWeek() }
func (s *Session) ViewPreviousWeek() { s.History.RetreatWeek() }

// Goal setters mutate the session defaults and immediately re-sync the
// current day's snapshot, so edits show up on the open day without
// retroactively touching any other day.

func (s *Session) SetWorkSleepBalance(v int) {
	s.Goals.SetWorkSleepBalance(v)
	s.History.ResyncGoals(s.CurrentDate, s.Goals)
}

func (s *Session) SetTargetWorkCount(v int) {
	s.Goals.SetTargetWorkCount(v)
	s.History.ResyncGoals(s.CurrentDate, s.Goals)
}

func (s *Session) SetTargetBedtime(b Bedtime) {
	s.Goals.SetTargetBedtime(b)
	s.History.ResyncGoals(s.CurrentDate, s.Goals)
}

func (s *Session) SetBedtimeHalflife(v int) {
	s.Goals.SetBedtimeHalflife(v)
	s.History.ResyncGoals(s.CurrentDate, s.Goals)
}

// Week returns the 7 cells of the displayed window.
func (s *Session) Week() []DayCell {
	return s.History.Week()
}

// ScoreBreakdown renders the score derivation for the current date. Days
// without a record fall back to an empty record over the session goals,
// so the formula is still visible before any data lands.
func (s *Session) ScoreBreakdown() string {
	r := s.History.Get(s.CurrentDate)
	if r == nil {
		r = &DayRecord{Goals: s.Goals}
	}
	return r.Breakdown()
}
