package tracker

import (
	"sort"
	"time"
)

// Day normalizes a timestamp to its calendar date (midnight UTC). All
// History keys go through this, so map lookups compare dates only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayCell pairs a date in the displayed window with its record, which is
// nil for days that were never touched.
type DayCell struct {
	Date   time.Time
	Record *DayRecord
}

// History is the date-keyed collection of day records plus the week
// cursor the view window hangs off. Entries are never pruned.
type History struct {
	days      map[time.Time]*DayRecord
	weekStart time.Time
}

func NewHistory() *History {
	return &History{days: make(map[time.Time]*DayRecord)}
}

// Get returns the record for date, or nil.
func (h *History) Get(date time.Time) *DayRecord {
	return h.days[Day(date)]
}

// GetOrCreate returns the existing record for date, or inserts a fresh
// one seeded with a copy of goals (zero work, no bedtime). Repeated calls
// on a present date never reset existing data.
func (h *History) GetOrCreate(date time.Time, goals Goals) *DayRecord {
	d := Day(date)
	if r, ok := h.days[d]; ok {
		return r
	}
	r := &DayRecord{Goals: goals}
	h.days[d] = r
	return r
}

// ResyncGoals overwrites the goals snapshot of the record at date
// (lazily creating it) with a fresh copy of goals. Work count and
// bedtime are left untouched. Other days are never affected.
func (h *History) ResyncGoals(date time.Time, goals Goals) {
	r := h.GetOrCreate(date, goals)
	r.Goals = goals
}

// LastDate returns the latest recorded date, if any.
func (h *History) LastDate() (time.Time, bool) {
	var last time.Time
	found := false
	for d := range h.days {
		if !found || d.After(last) {
			last = d
			found = true
		}
	}
	return last, found
}

// Len returns the number of recorded days.
func (h *History) Len() int {
	return len(h.days)
}

// Days returns every recorded day in date order, for export.
func (h *History) Days() []DayCell {
	cells := make([]DayCell, 0, len(h.days))
	for d, r := range h.days {
		cells = append(cells, DayCell{Date: d, Record: r})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Date.Before(cells[j].Date) })
	return cells
}

// WeekStart returns the first date of the displayed window.
func (h *History) WeekStart() time.Time {
	return h.weekStart
}

// Week returns the 7 consecutive (date, record-or-nil) cells starting at
// the week cursor.
func (h *History) Week() []DayCell {
	cells := make([]DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		d := h.weekStart.AddDate(0, 0, i)
		cells = append(cells, DayCell{Date: d, Record: h.days[d]})
	}
	return cells
}

// RecomputeWeekStart re-anchors the window on current. When the history
// is empty, or its latest date is not after current, the window trails:
// it ends exactly on current. When later records exist the window centers
// instead, putting current in the fourth slot so the already-recorded
// future days stay visible while browsing history.
func (h *History) RecomputeWeekStart(current time.Time) {
	d := Day(current)
	last, ok := h.LastDate()
	if !ok || !last.After(d) {
		h.weekStart = d.AddDate(0, 0, -6)
		return
	}
	h.weekStart = d.AddDate(0, 0, -3)
}

// AdvanceWeek shifts the window forward 7 days. The anchoring policy is
// not re-applied until the next RecomputeWeekStart.
func (h *History) AdvanceWeek() {
	h.weekStart = h.weekStart.AddDate(0, 0, 7)
}

// RetreatWeek shifts the window back 7 days.
func (h *History) RetreatWeek() {
	h.weekStart = h.weekStart.AddDate(0, 0, -7)
}
