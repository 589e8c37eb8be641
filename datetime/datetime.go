package datetime

import "fmt"

/***** STRUCT **********************************/

/*
Gregorian calendar date and time of day.
The calendar is the proleptic Gregorian one, extended in both directions,
and no time zone is attached: the same struct carries UTC, local time or
GPS time, and which one it is stays a convention of the caller.
Fields are not validated. The Add methods normalize the overflow their own
arithmetic produces and nothing more.
*/
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

/***** FUNCTION ********************************/

// DateTime of the given count of seconds since 01-Jan-1970 00:00:00.
func Unix2DateTime(seconds int64) DateTime {
	return DATETIME_UNIX0.AddSecond(int(seconds))
}

/***********************************************/

func (t DateTime) AddYear(years int) DateTime {
	t.Year += years

	// 29-Feb landing on a common year
	if t.Month == 2 {
		t = foldDayOverflow(t)
	}

	return t
}

/***********************************************/

func (t DateTime) AddMonth(months int) DateTime {
	t.Year += months / YEAR2MONTH
	t.Month += months % YEAR2MONTH

	if t.Month > YEAR2MONTH {
		t.Year += 1
		t.Month -= YEAR2MONTH
	} else if t.Month < 1 {
		t.Year -= 1
		t.Month += YEAR2MONTH
	}

	return foldDayOverflow(t)
}

/***********************************************/

func (t DateTime) AddWeek(weeks int) DateTime {
	return Jd2DateTime(DateTime2Jd(t) + float64(weeks*WEEK2DAY))
}

/***********************************************/

func (t DateTime) AddDay(days int) DateTime {
	return Jd2DateTime(DateTime2Jd(t) + float64(days))
}

/***********************************************/

func (t DateTime) AddHour(hours int) DateTime {
	return Jd2DateTime(DateTime2Jd(t) + float64(hours)/float64(DAY2HOUR))
}

/***********************************************/

func (t DateTime) AddMinute(minutes int) DateTime {
	return Jd2DateTime(DateTime2Jd(t) + float64(minutes)/float64(DAY2MINUTE))
}

/***********************************************/

func (t DateTime) AddSecond(seconds int) DateTime {
	return Jd2DateTime(DateTime2Jd(t) + float64(seconds)/float64(DAY2SECOND))
}

/***********************************************/

func (t DateTime) DayOfYear() int {
	return ymd2jdn(t.Year, t.Month, t.Day) - ymd2jdn(t.Year, 1, 1) + 1
}

/***********************************************/

func (t DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

/***********************************************/
