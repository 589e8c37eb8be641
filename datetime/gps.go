package datetime

/***** STRUCT **********************************/

// GPS time as weeks since 06-Jan-1980 00:00:00 and seconds of week.
// Leap seconds are not modeled. The Add methods keep Second in
// 0..WEEK2SECOND-1 provided it starts there.
type GpsWeekSecond struct {
	Week   int
	Second int
}

/***** FUNCTION ********************************/

func DateTime2GpsWeekSecond(t DateTime) GpsWeekSecond {
	return Jd2GpsWeekSecond(DateTime2Jd(t))
}

/***********************************************/

func GpsWeekSecond2DateTime(ws GpsWeekSecond) DateTime {
	return Jd2DateTime(GpsWeekSecond2Jd(ws))
}

/***********************************************/

func GpsWeekSecond2Jd(ws GpsWeekSecond) float64 {
	return JD_GPST0 + float64(ws.Week*WEEK2DAY) + float64(ws.Second)/float64(DAY2SECOND)
}

/***********************************************/

func GpsWeekSecond2Mjd(ws GpsWeekSecond) float64 {
	return Jd2Mjd(GpsWeekSecond2Jd(ws))
}

/***********************************************/

/*
GPS week and second of jd.
Days since the epoch are truncated toward zero and so is the week, so
before the epoch the week is off by one and the second may be negative.
Second of day comes from the same split Jd2DateTime uses, which keeps the
day and the time of day consistent across midnight.
*/
func Jd2GpsWeekSecond(jd float64) GpsWeekSecond {
	jdn, sod := splitJd(jd)
	days := jdn - _JDN_GPST0

	if days < 0 && sod > 0 {
		days++
	}

	week := days / WEEK2DAY
	return GpsWeekSecond{week, (days-week*WEEK2DAY)*DAY2SECOND + sod}
}

/***********************************************/

func (ws GpsWeekSecond) AddYear(years int) GpsWeekSecond {
	return DateTime2GpsWeekSecond(GpsWeekSecond2DateTime(ws).AddYear(years))
}

/***********************************************/

func (ws GpsWeekSecond) AddMonth(months int) GpsWeekSecond {
	return DateTime2GpsWeekSecond(GpsWeekSecond2DateTime(ws).AddMonth(months))
}

/***********************************************/

func (ws GpsWeekSecond) AddWeek(weeks int) GpsWeekSecond {
	ws.Week += weeks
	return ws
}

/***********************************************/

func (ws GpsWeekSecond) AddDay(days int) GpsWeekSecond {
	return ws.addUnits(days, WEEK2DAY, DAY2SECOND)
}

/***********************************************/

func (ws GpsWeekSecond) AddHour(hours int) GpsWeekSecond {
	return ws.addUnits(hours, WEEK2HOUR, HOUR2SECOND)
}

/***********************************************/

func (ws GpsWeekSecond) AddMinute(minutes int) GpsWeekSecond {
	return ws.addUnits(minutes, WEEK2MINUTE, MINUTE2SECOND)
}

/***********************************************/

func (ws GpsWeekSecond) AddSecond(seconds int) GpsWeekSecond {
	return ws.addUnits(seconds, WEEK2SECOND, 1)
}

/***********************************************/

func (ws GpsWeekSecond) DayOfWeek() int {
	return ws.Second / DAY2SECOND
}

/***********************************************/

// Add n units of unitSec seconds each, perWeek of them making a week.
func (ws GpsWeekSecond) addUnits(n, perWeek, unitSec int) GpsWeekSecond {
	ws.Week += n / perWeek
	ws.Second += n % perWeek * unitSec

	if ws.Second >= WEEK2SECOND {
		ws.Week += 1
		ws.Second -= WEEK2SECOND
	} else if ws.Second < 0 {
		ws.Week -= 1
		ws.Second += WEEK2SECOND
	}

	return ws
}

/***********************************************/
