package tracker

// Goals holds the user-configurable targets that drive the daily score.
// WorkSleepBalance is the point weight given to work; sleep implicitly
// gets the remaining 100 - balance points.
type Goals struct {
	WorkSleepBalance int // 0..100
	TargetWorkCount  int // >= 1
	TargetBedtime    Bedtime
	BedtimeHalflife  int // minutes, >= 1
}

// DefaultGoals returns the goals a fresh session starts with.
func DefaultGoals() Goals {
	return Goals{
		WorkSleepBalance: 70,
		TargetWorkCount:  6,
		TargetBedtime:    NewBedtime(23, 0, false),
		BedtimeHalflife:  30,
	}
}

// SetWorkSleepBalance clamps to 0..100.
func (g *Goals) SetWorkSleepBalance(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	g.WorkSleepBalance = v
}

// SetTargetWorkCount clamps to >= 1. A zero target would divide the work
// score by zero, so the setter is where that contract is enforced.
func (g *Goals) SetTargetWorkCount(v int) {
	if v < 1 {
		v = 1
	}
	g.TargetWorkCount = v
}

func (g *Goals) SetTargetBedtime(b Bedtime) {
	g.TargetBedtime = b
}

// SetBedtimeHalflife clamps to >= 1 minute.
func (g *Goals) SetBedtimeHalflife(v int) {
	if v < 1 {
		v = 1
	}
	g.BedtimeHalflife = v
}
