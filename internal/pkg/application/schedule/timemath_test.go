package schedule

import (
	"testing"

	"github.com/matryer/is"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

func TestTo24HourMidnightAndNoon(t *testing.T) {
	is := is.New(t)

	h, m, err := To24Hour(12, 30, types.MeridiemAM)
	is.NoErr(err)
	is.Equal(h, 0)
	is.Equal(m, 30)

	h, m, err = To24Hour(12, 30, types.MeridiemPM)
	is.NoErr(err)
	is.Equal(h, 12)
	is.Equal(m, 30)
}

func TestTo24Hour(t *testing.T) {
	is := is.New(t)

	h, _, err := To24Hour(6, 0, types.MeridiemAM)
	is.NoErr(err)
	is.Equal(h, 6)

	h, _, err = To24Hour(6, 0, types.MeridiemPM)
	is.NoErr(err)
	is.Equal(h, 18)
}

func TestTo24HourRejectsBadInput(t *testing.T) {
	is := is.New(t)

	_, _, err := To24Hour(0, 0, types.MeridiemAM)
	is.True(err != nil)

	_, _, err = To24Hour(13, 0, types.MeridiemAM)
	is.True(err != nil)

	_, _, err = To24Hour(8, 60, types.MeridiemAM)
	is.True(err != nil)

	_, _, err = To24Hour(8, 0, types.Meridiem("am"))
	is.True(err != nil)
}

func TestTimeConversionRoundTrips(t *testing.T) {
	is := is.New(t)

	for hour24 := 0; hour24 < 24; hour24++ {
		h12, m, meridiem, err := To12Hour(hour24, 15)
		is.NoErr(err)

		h24, m24, err := To24Hour(h12, m, meridiem)
		is.NoErr(err)
		is.Equal(h24, hour24)
		is.Equal(m24, 15)
	}
}

func TestTo12HourBoundaries(t *testing.T) {
	is := is.New(t)

	h, _, meridiem, err := To12Hour(0, 0)
	is.NoErr(err)
	is.Equal(h, 12)
	is.Equal(meridiem, types.MeridiemAM)

	h, _, meridiem, err = To12Hour(12, 0)
	is.NoErr(err)
	is.Equal(h, 12)
	is.Equal(meridiem, types.MeridiemPM)

	_, _, _, err = To12Hour(24, 0)
	is.True(err != nil)
}
