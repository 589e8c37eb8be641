package datetime

/***** FUNCTION ********************************/

func DateTime2Mjd(t DateTime) float64 {
	return Jd2Mjd(DateTime2Jd(t))
}

/***********************************************/

func Mjd2Jd(mjd float64) float64 {
	return mjd + JD_MJD0
}

/***********************************************/

func Mjd2DateTime(mjd float64) DateTime {
	return Jd2DateTime(Mjd2Jd(mjd))
}

/***********************************************/

func Mjd2GpsWeekSecond(mjd float64) GpsWeekSecond {
	return Jd2GpsWeekSecond(Mjd2Jd(mjd))
}

/***********************************************/

func MjdAddYear(mjd float64, years int) float64 {
	return DateTime2Mjd(Mjd2DateTime(mjd).AddYear(years))
}

/***********************************************/

func MjdAddMonth(mjd float64, months int) float64 {
	return DateTime2Mjd(Mjd2DateTime(mjd).AddMonth(months))
}

/***********************************************/

func MjdAddWeek(mjd float64, weeks int) float64 {
	return mjd + float64(weeks*WEEK2DAY)
}

/***********************************************/

func MjdAddDay(mjd float64, days int) float64 {
	return mjd + float64(days)
}

/***********************************************/

func MjdAddHour(mjd float64, hours int) float64 {
	return mjd + float64(hours)/float64(DAY2HOUR)
}

/***********************************************/

func MjdAddMinute(mjd float64, minutes int) float64 {
	return mjd + float64(minutes)/float64(DAY2MINUTE)
}

/***********************************************/

func MjdAddSecond(mjd float64, seconds int) float64 {
	return mjd + float64(seconds)/float64(DAY2SECOND)
}

/***********************************************/
