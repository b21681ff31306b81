// Package quota implements the weekly submission limits for chore templates.
// It is pure: the same functions gate writes and render availability.
package quota

import (
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
)

// Availability reports how a single chore template stands against its daily
// limit. Remaining is nil when the limit is 0 (unlimited).
type Availability struct {
	CanSubmit  bool
	TodayCount int
	Limit      int
	Remaining  *int
}

// DayIndex maps a timestamp to the template's limit slot. Slots are ordered
// Sunday=0 .. Saturday=6, which matches time.Weekday directly.
func DayIndex(t time.Time) int {
	return int(t.Weekday())
}

// LimitForDay returns the configured limit slot for the weekday of t.
func LimitForDay(tpl domain.ChoreTemplate, t time.Time) int {
	return tpl.Limits[DayIndex(t)]
}

// Check evaluates a daily limit against the number of submissions already
// made that day. A limit of 0 means unlimited: always admissible.
func Check(limit, todayCount int) Availability {
	if limit == 0 {
		return Availability{
			CanSubmit:  true,
			TodayCount: todayCount,
			Limit:      limit,
		}
	}
	remaining := limit - todayCount
	if remaining < 0 {
		remaining = 0
	}
	return Availability{
		CanSubmit:  todayCount < limit,
		TodayCount: todayCount,
		Limit:      limit,
		Remaining:  &remaining,
	}
}

var dayLabels = [7]string{"S", "M", "T", "W", "Th", "F", "S"}

// DayAbbreviations concatenates the labels of the weekdays on which the
// template is available (limit > 0), e.g. [1,0,1,0,1,0,1] -> "STThS".
func DayAbbreviations(limits [7]int) string {
	var out string
	for i, limit := range limits {
		if limit > 0 {
			out += dayLabels[i]
		}
	}
	return out
}
