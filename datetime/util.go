package datetime

import "math"

/***** FUNCTION ********************************/

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/***********************************************/

// Number of days in the month. Months outside 1..12 are counted like
// February, so the result is always 28..31.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}

	if IsLeapYear(year) {
		return 29
	}

	return 28
}

/***********************************************/

// Fold a day past the end of its month into the following month, carrying
// into the year when that crosses December. Nothing else is normalized.
func foldDayOverflow(t DateTime) DateTime {
	mday := DaysInMonth(t.Year, t.Month)

	if t.Day > mday {
		t.Month += 1
		t.Day -= mday

		if t.Month > YEAR2MONTH {
			t.Year += 1
			t.Month -= YEAR2MONTH
		}
	}

	return t
}

/***********************************************/

// Julian day number of a calendar date, with March as the first month of
// the computational year.
func ymd2jdn(year, month, day int) int {
	a := (month - 14) / 12

	return (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
}

/***********************************************/

// Inverse of ymd2jdn.
func jdn2ymd(jdn int) (year, month, day int) {
	const (
		y = 4716
		j = 1401
		m = 2
		n = 12
		r = 4
		p = 1461
		v = 3
		u = 5
		s = 153
		w = 2
		b = 274277
		c = -38
	)

	f := jdn + j + (((4*jdn+b)/146097)*3)/4 + c
	e := r*f + v
	g := (e % p) / r
	h := u*g + w

	day = (h%s)/u + 1
	month = (h/s+m)%n + 1
	year = e/p - y + (n+m-month)/n
	return
}

/***********************************************/

// Split a JD into the day number of the civil day it falls in and the
// whole seconds elapsed since that day's midnight.
func splitJd(jd float64) (jdn, sod int) {
	jdn = int(math.Floor(jd + 0.5))
	sod = int(math.Floor((jd+0.5-float64(jdn))*float64(DAY2SECOND) + JD_EPSILON))

	if sod >= DAY2SECOND {
		jdn++
		sod -= DAY2SECOND
	}

	return
}

/***********************************************/
