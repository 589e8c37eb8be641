package datetime

/***** STRUCT **********************************/

// The same instant seen as UTC, as local time and as GPS time.
type Snapshot struct {
	Utc   DateTime
	Local DateTime
	Gps   DateTime
	GpsWs GpsWeekSecond
	Mjd   float64 // of Utc
}

/***** FUNCTION ********************************/

// Snapshot of a Unix time. tzOffset is local time minus UTC in seconds.
func NewSnapshot(unix int64, tzOffset int, leap LeapSeconds) Snapshot {
	var s Snapshot

	s.Utc = Unix2DateTime(unix)
	s.Mjd = DateTime2Mjd(s.Utc)
	s.Local = s.Utc.AddSecond(tzOffset)
	s.Gps = s.Utc.AddSecond(leap.GpsUtcOffset(s.Mjd))
	s.GpsWs = DateTime2GpsWeekSecond(s.Gps)
	return s
}

/***********************************************/
