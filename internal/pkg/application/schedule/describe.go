package schedule

import (
	"strings"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var DefaultDayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var (
	weekdayMask = types.Weekdays{false, true, true, true, true, true, false}
	weekendMask = types.Weekdays{true, false, false, false, false, false, true}
	everyDay    = types.Weekdays{true, true, true, true, true, true, true}
)

// DescribeWeekdays renders a repeat mask for display. Day labels are
// injectable so a caller can localize the abbreviations.
func DescribeWeekdays(days types.Weekdays, labels [7]string) string {
	switch days {
	case types.Weekdays{}:
		return "Never"
	case everyDay:
		return "Every day"
	case weekdayMask:
		return "Weekdays"
	case weekendMask:
		return "Weekends"
	}

	names := make([]string, 0, 7)
	for i, active := range days {
		if active {
			names = append(names, labels[i])
		}
	}

	return strings.Join(names, ", ")
}
