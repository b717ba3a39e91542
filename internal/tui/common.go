package tui

import "time"

// viewState represents the currently active view.
type viewState int

const (
	viewWeek viewState = iota
	viewTasks
	viewGoals
)

var viewNames = []string{"Week", "Tasks", "Goals"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDay(d time.Time) string {
	return d.Format("Mon 02")
}

func formatDate(d time.Time) string {
	return d.Format("2006-01-02")
}
