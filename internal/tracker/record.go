package tracker

import (
	"fmt"
	"math"
)

// DayRecord is one calendar day's outcome: a snapshot of the goals that
// were current when the day was first touched, the number of completed
// work units, and the recorded bedtime if any. The goals snapshot is an
// independent copy; later edits to the session goals do not reach it
// unless the day is explicitly re-synced.
type DayRecord struct {
	Goals           Goals
	ActualWorkCount int
	ActualBedtime   *Bedtime
}

// scoreParts returns the unrounded work and sleep contributions.
func (r *DayRecord) scoreParts() (work, sleep float64) {
	work = float64(r.ActualWorkCount*r.Goals.WorkSleepBalance) / float64(r.Goals.TargetWorkCount)
	if r.ActualBedtime != nil {
		dist := r.ActualBedtime.DistanceMinutes(r.Goals.TargetBedtime)
		sleep = float64(100-r.Goals.WorkSleepBalance) *
			math.Pow(0.5, float64(dist)/float64(r.Goals.BedtimeHalflife))
	}
	return work, sleep
}

// Score blends the work and sleep contributions into a single number.
// The sleep contribution starts at the full 100 - balance points for a
// bedtime exactly on target and halves for every BedtimeHalflife minutes
// of deviation. No recorded bedtime contributes exactly 0. The sum is
// rounded half away from zero (math.Round).
func (r *DayRecord) Score() int {
	work, sleep := r.scoreParts()
	return int(math.Round(work + sleep))
}

// Breakdown renders the score derivation with live numbers substituted,
// for display on the week view.
func (r *DayRecord) Breakdown() string {
	work, sleep := r.scoreParts()

	workLine := fmt.Sprintf("work:  %d × %d / %d = %.1f",
		r.ActualWorkCount, r.Goals.WorkSleepBalance, r.Goals.TargetWorkCount, work)

	var sleepLine string
	if r.ActualBedtime != nil {
		dist := r.ActualBedtime.DistanceMinutes(r.Goals.TargetBedtime)
		sleepLine = fmt.Sprintf("sleep: %d × 0.5^(%d/%d) = %.1f",
			100-r.Goals.WorkSleepBalance, dist, r.Goals.BedtimeHalflife, sleep)
	} else {
		sleepLine = "sleep: no bedtime recorded = 0"
	}

	total := fmt.Sprintf("score: round(%.1f + %.1f) = %d", work, sleep, r.Score())
	return workLine + "\n" + sleepLine + "\n" + total
}
