package datetime

/***** CONSTANT ********************************/

const (
	DAY2HOUR      int = 24
	HOUR2MINUTE   int = 60
	MINUTE2SECOND int = 60
	DAY2MINUTE    int = DAY2HOUR * HOUR2MINUTE
	HOUR2SECOND   int = HOUR2MINUTE * MINUTE2SECOND
	DAY2SECOND    int = DAY2HOUR * HOUR2SECOND
	WEEK2DAY      int = 7
	WEEK2HOUR     int = WEEK2DAY * DAY2HOUR
	WEEK2MINUTE   int = WEEK2DAY * DAY2MINUTE
	WEEK2SECOND   int = WEEK2DAY * DAY2SECOND
	YEAR2MONTH    int = 12
)

/***********************************************/

const (
	JD_MJD0  float64 = 2400000.5 // jd of mjd 0, 17-Nov-1858 00:00:00
	JD_GPST0 float64 = 2444244.5 // jd of 06-Jan-1980 00:00:00, the GPS epoch
	JD_UNIX0 float64 = 2440587.5 // jd of 01-Jan-1970 00:00:00

	// Tolerance in seconds when truncating the time of day out of a JD.
	// A float64 JD near 2.4e6 resolves about 4e-5 s.
	JD_EPSILON float64 = 1.0e-3

	_JDN_GPST0 int = 2444245 // day number of the GPS epoch
)

/***********************************************/

const (
	DELTA_TAI_GPST float64 = 19.0
	DELTA_TAI_UTC  float64 = 10.0 // before the first leap second

	DEFAULT_TIMEZONE_OFFSET int = 8 * HOUR2SECOND // UTC+8
	DEFAULT_GPS_UTC_OFFSET  int = 18              // since 01-Jan-2017
)

/***********************************************/

type LeapSecond struct {
	Value int8
	Total int16
	Mjd   int32
}

// leap seconds table of UTC (value, total value, mjd).
var UTC_LEAP_SEC []LeapSecond = []LeapSecond{
	{1, 27, 57754}, // 2017-01-01
	{1, 26, 57204}, // 2015-07-01
	{1, 25, 56109}, // 2012-07-01
	{1, 24, 54832}, // 2009-01-01
	{1, 23, 53736}, // 2006-01-01
	{1, 22, 51179}, // 1999-01-01
	{1, 21, 50630}, // 1997-07-01
	{1, 20, 50083}, // 1996-01-01
	{1, 19, 49534}, // 1994-07-01
	{1, 18, 49169}, // 1993-07-01
	{1, 17, 48804}, // 1992-07-01
	{1, 16, 48257}, // 1991-01-01
	{1, 15, 47892}, // 1990-01-01
	{1, 14, 47161}, // 1988-01-01
	{1, 13, 46247}, // 1985-07-01
	{1, 12, 45516}, // 1983-07-01
	{1, 11, 45151}, // 1982-07-01
	{1, 10, 44786}, // 1981-07-01
	{1, 9, 44239},  // 1980-01-01
	{1, 8, 43874},  // 1979-01-01
	{1, 7, 43509},  // 1978-01-01
	{1, 6, 43144},  // 1977-01-01
	{1, 5, 42778},  // 1976-01-01
	{1, 4, 42413},  // 1975-01-01
	{1, 3, 42048},  // 1974-01-01
	{1, 2, 41683},  // 1973-01-01
	{1, 1, 41499},  // 1972-07-01
}

/***********************************************/

var (
	DATETIME_UNIX0 = DateTime{1970, 1, 1, 0, 0, 0}
	DATETIME_GPST0 = DateTime{1980, 1, 6, 0, 0, 0}
)

/***********************************************/
