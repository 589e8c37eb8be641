package datetime

/***** FUNCTION ********************************/

// Julian date of t. The JD day starts at noon, so 00:00 is half a day
// before the day number of the date.
func DateTime2Jd(t DateTime) float64 {
	jdn := ymd2jdn(t.Year, t.Month, t.Day)
	sod := (t.Hour-12)*HOUR2SECOND + t.Minute*MINUTE2SECOND + t.Second
	return float64(jdn) + float64(sod)/float64(DAY2SECOND)
}

/***********************************************/

// Gregorian date of jd, truncated to the second.
func Jd2DateTime(jd float64) DateTime {
	var t DateTime

	jdn, sod := splitJd(jd)
	t.Year, t.Month, t.Day = jdn2ymd(jdn)
	t.Hour = sod / HOUR2SECOND
	t.Minute = sod % HOUR2SECOND / MINUTE2SECOND
	t.Second = sod % MINUTE2SECOND
	return t
}

/***********************************************/

func Jd2Mjd(jd float64) float64 {
	return jd - JD_MJD0
}

/***********************************************/

func JdAddYear(jd float64, years int) float64 {
	return DateTime2Jd(Jd2DateTime(jd).AddYear(years))
}

/***********************************************/

func JdAddMonth(jd float64, months int) float64 {
	return DateTime2Jd(Jd2DateTime(jd).AddMonth(months))
}

/***********************************************/

func JdAddWeek(jd float64, weeks int) float64 {
	return jd + float64(weeks*WEEK2DAY)
}

/***********************************************/

func JdAddDay(jd float64, days int) float64 {
	return jd + float64(days)
}

/***********************************************/

func JdAddHour(jd float64, hours int) float64 {
	return jd + float64(hours)/float64(DAY2HOUR)
}

/***********************************************/

func JdAddMinute(jd float64, minutes int) float64 {
	return jd + float64(minutes)/float64(DAY2MINUTE)
}

/***********************************************/

func JdAddSecond(jd float64, seconds int) float64 {
	return jd + float64(seconds)/float64(DAY2SECOND)
}

/***********************************************/
