package schedule

import (
	"time"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

// NextOccurrence returns the next instant the alarm should fire, relative
// to now. An instant exactly equal to now counts as already passed, so an
// alarm never re-fires at the moment it was just resolved.
//
// One shot alarms (no weekday set) always have a next occurrence: today if
// the time of day is still ahead, otherwise tomorrow. Recurring alarms get
// the first qualifying day within the coming week, or ok==false if none
// qualifies.
func NextOccurrence(alarm types.Alarm, now time.Time) (time.Time, bool) {
	hour24, minute, err := To24Hour(alarm.Hour, alarm.Minute, alarm.Meridiem)
	if err != nil {
		return time.Time{}, false
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour24, minute, 0, 0, now.Location())

	if !alarm.Weekdays.Any() {
		if candidate.After(now) {
			return candidate, true
		}
		return candidate.AddDate(0, 0, 1), true
	}

	// offset 7 catches a mask active only on today's weekday after the
	// time of day has passed
	for offset := 0; offset <= 7; offset++ {
		day := candidate.AddDate(0, 0, offset)
		if !alarm.Weekdays.Active(day.Weekday()) {
			continue
		}
		if offset == 0 && !day.After(now) {
			continue
		}
		return day, true
	}

	return time.Time{}, false
}
