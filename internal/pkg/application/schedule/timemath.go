package schedule

import (
	"fmt"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var ErrInvalidTime = fmt.Errorf("invalid wall clock time")

// To24Hour converts a 12 hour wall clock time to hour-of-day form.
// 12 AM maps to 0 and 12 PM maps to 12.
func To24Hour(hour12, minute int, meridiem types.Meridiem) (int, int, error) {
	if hour12 < 1 || hour12 > 12 {
		return 0, 0, fmt.Errorf("%w: hour %d not in 1..12", ErrInvalidTime, hour12)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute %d not in 0..59", ErrInvalidTime, minute)
	}
	if !meridiem.Valid() {
		return 0, 0, fmt.Errorf("%w: meridiem %q", ErrInvalidTime, meridiem)
	}

	hour24 := hour12 % 12
	if meridiem == types.MeridiemPM {
		hour24 += 12
	}

	return hour24, minute, nil
}

// To12Hour is the inverse of To24Hour.
func To12Hour(hour24, minute int) (int, int, types.Meridiem, error) {
	if hour24 < 0 || hour24 > 23 {
		return 0, 0, "", fmt.Errorf("%w: hour %d not in 0..23", ErrInvalidTime, hour24)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, "", fmt.Errorf("%w: minute %d not in 0..59", ErrInvalidTime, minute)
	}

	meridiem := types.MeridiemAM
	if hour24 >= 12 {
		meridiem = types.MeridiemPM
	}

	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return hour12, minute, meridiem, nil
}
