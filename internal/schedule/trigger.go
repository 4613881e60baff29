// Package schedule models the time-based rule of the recurring task:
// a fixed daily anchor at 00:00 composed with a repetition interval in
// minutes and no end boundary. The trigger fires at every multiple of the
// interval past midnight, every day, until the task is removed.
package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// MaxIntervalMinutes is the largest accepted repetition interval. The
// trigger is sub-daily, so anything from a full day up is rejected.
const MaxIntervalMinutes = 1439

// Trigger is a daily-anchored repetition rule.
type Trigger struct {
	intervalMinutes int
	// cronSchedule is set when the interval divides the hour and the rule is
	// expressible as a standard cron line. Used for next-fire computation.
	cronSchedule cron.Schedule
}

// NewTrigger validates the interval and builds a trigger.
func NewTrigger(intervalMinutes int) (Trigger, error) {
	if intervalMinutes < 1 || intervalMinutes > MaxIntervalMinutes {
		return Trigger{}, fmt.Errorf("interval must be between 1 and %d minutes, got %d", MaxIntervalMinutes, intervalMinutes)
	}

	t := Trigger{intervalMinutes: intervalMinutes}
	if expr, ok := t.CronExpression(); ok {
		sched, err := cron.ParseStandard(expr)
		if err != nil {
			return Trigger{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
		}
		t.cronSchedule = sched
	}
	return t, nil
}

// IntervalMinutes returns the repetition interval in minutes.
func (t Trigger) IntervalMinutes() int {
	return t.intervalMinutes
}

// Interval returns the repetition interval as a duration.
func (t Trigger) Interval() time.Duration {
	return time.Duration(t.intervalMinutes) * time.Minute
}

// CronExpression renders the trigger as a standard five-field cron line.
// The second result is false when the interval does not divide the hour;
// such intervals drift across hour boundaries and plain cron cannot carry
// a daily anchor for them.
func (t Trigger) CronExpression() (string, bool) {
	if 60%t.intervalMinutes != 0 {
		return "", false
	}
	if t.intervalMinutes == 60 {
		return "0 * * * *", true
	}
	return fmt.Sprintf("*/%d * * * *", t.intervalMinutes), true
}

// OnCalendar renders the trigger as systemd OnCalendar expressions. When the
// interval divides the hour a single repeating expression suffices;
// otherwise every daily fire time is enumerated so the 00:00 anchor holds.
func (t Trigger) OnCalendar() []string {
	if 60%t.intervalMinutes == 0 {
		if t.intervalMinutes == 60 {
			return []string{"*-*-* *:00:00"}
		}
		return []string{fmt.Sprintf("*-*-* *:00/%d:00", t.intervalMinutes)}
	}

	var lines []string
	for m := 0; m < 24*60; m += t.intervalMinutes {
		lines = append(lines, fmt.Sprintf("*-*-* %02d:%02d:00", m/60, m%60))
	}
	return lines
}

// Next returns the first fire time strictly after from.
func (t Trigger) Next(from time.Time) time.Time {
	if t.cronSchedule != nil {
		return t.cronSchedule.Next(from)
	}

	midnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	step := t.Interval()
	next := midnight.Add((from.Sub(midnight)/step + 1) * step)
	if dayEnd := midnight.Add(24 * time.Hour); !next.Before(dayEnd) {
		// Repetition re-anchors at the next midnight.
		return dayEnd
	}
	return next
}
