package datetime

import "math"

/***** INTERFACE *******************************/

// LeapSeconds gives GPS time minus UTC, in seconds, at a UTC epoch.
type LeapSeconds interface {
	GpsUtcOffset(mjd float64) int
}

/***** STRUCT **********************************/

// A constant GPS-UTC offset. It goes stale at the next leap second.
type FixedLeapSeconds int

/***********************************************/

// GPS-UTC looked up in a UTC leap-second table sorted newest first.
type LeapSecondTable []LeapSecond

/***** FUNCTION ********************************/

func (f FixedLeapSeconds) GpsUtcOffset(mjd float64) int {
	return int(f)
}

/***********************************************/

func DefaultLeapSecondTable() LeapSecondTable {
	return LeapSecondTable(UTC_LEAP_SEC)
}

/***********************************************/

func (tab LeapSecondTable) GpsUtcOffset(mjd float64) int {
	return int(DELTA_TAI_UTC-DELTA_TAI_GPST) + int(tab.total(int32(math.Floor(mjd))))
}

/***********************************************/

// Leap seconds inserted up to and including the day mjd.
func (tab LeapSecondTable) total(mjd int32) (total int16) {
	for _, item := range tab {
		if mjd >= item.Mjd {
			total = item.Total
			break
		}
	}

	return
}

/***********************************************/
