package tracker

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// Bedtime is a clock time that may conceptually belong to the morning
// after the day it is recorded for: 00:30 logged with NextDay set counts
// as half an hour past midnight, not 23.5 hours before it.
type Bedtime struct {
	Minutes int // minutes since midnight, 0..1439
	NextDay bool
}

// NewBedtime builds a Bedtime from a wall-clock hour and minute.
func NewBedtime(hour, min int, nextDay bool) Bedtime {
	return Bedtime{Minutes: hour*60 + min, NextDay: nextDay}
}

// ParseBedtime parses an "HH:MM" clock string.
func ParseBedtime(text string, nextDay bool) (Bedtime, error) {
	t, err := time.Parse("15:04", text)
	if err != nil {
		return Bedtime{}, fmt.Errorf("parse bedtime %q: %w", text, err)
	}
	return NewBedtime(t.Hour(), t.Minute(), nextDay), nil
}

// shifted returns the instant in minutes, pushed forward a day when the
// bedtime falls on the next calendar day.
func (b Bedtime) shifted() int {
	if b.NextDay {
		return b.Minutes + minutesPerDay
	}
	return b.Minutes
}

// DistanceMinutes returns the absolute distance between two bedtimes in
// minutes. Symmetric: DistanceMinutes(a, b) == DistanceMinutes(b, a).
func (b Bedtime) DistanceMinutes(other Bedtime) int {
	d := b.shifted() - other.shifted()
	if d < 0 {
		d = -d
	}
	return d
}

func (b Bedtime) String() string {
	s := fmt.Sprintf("%02d:%02d", b.Minutes/60, b.Minutes%60)
	if b.NextDay {
		s += " (+1d)"
	}
	return s
}
