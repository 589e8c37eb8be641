package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/***** VARIABLE ********************************/

var (
	reDateTimeFmt = regexp.MustCompile(`\{([\+\- 0]*)(\d*)\.?(\d*)([YymdHhMSDTO])\}`)
	reGpsFmt      = regexp.MustCompile(`\{([\+\- 0]*)(\d*)\.?(\d*)([Wsw])\}`)
)

/***** FUNCTION ********************************/

/*
Format t with a template. Each "{flag width.precision verb}" is replaced,
anything else is copied as is.

	Y  2-digit year          y  4-digit year
	m  month                 d  day
	H  hour                  h  hour as a letter, 'a' for 0 ('A' with '+')
	M  minute                S  second
	D  yyyy-mm-dd            T  HH:MM:SS
	O  day of year
*/
func (t DateTime) Format(format string) string {
	return formatTemplate(reDateTimeFmt, format, func(typer byte, flag, fmtStr string, isDefault bool) string {
		switch typer {
		case 'Y': // 2-digit year
			return sprintInt(fmtStr, "02d", isDefault, t.Year%100)
		case 'y': // 4-digit year
			return sprintInt(fmtStr, "04d", isDefault, t.Year)
		case 'm': // month
			return sprintInt(fmtStr, "02d", isDefault, t.Month)
		case 'd': // day
			return sprintInt(fmtStr, "02d", isDefault, t.Day)
		case 'H': // hour
			return sprintInt(fmtStr, "02d", isDefault, t.Hour)
		case 'h': // hour represented with letters
			hourByte := 'a' + t.Hour
			fmtStr = strings.ReplaceAll(fmtStr, "+", "")
			fmtStr = strings.ReplaceAll(fmtStr, "-", "")

			if strings.IndexByte(flag, '+') >= 0 { // uppercase
				hourByte = 'A' + t.Hour
			}

			return fmt.Sprintf(fmtStr+"c", hourByte)
		case 'M': // minute
			return sprintInt(fmtStr, "02d", isDefault, t.Minute)
		case 'S': // second
			return sprintInt(fmtStr, "02d", isDefault, t.Second)
		case 'D':
			return fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day)
		case 'T':
			return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
		default: // day of year
			return sprintInt(fmtStr, "03d", isDefault, t.DayOfYear())
		}
	})
}

/***********************************************/

/*
Format ws with a template, see DateTime.Format.

	W  week                  s  second of week
	w  day of week
*/
func (ws GpsWeekSecond) Format(format string) string {
	return formatTemplate(reGpsFmt, format, func(typer byte, flag, fmtStr string, isDefault bool) string {
		switch typer {
		case 'W': // week
			return sprintInt(fmtStr, "04d", isDefault, ws.Week)
		case 's': // second of week
			return sprintInt(fmtStr, "06d", isDefault, ws.Second)
		default: // day of week
			return sprintInt(fmtStr, "1d", isDefault, ws.DayOfWeek())
		}
	})
}

/***********************************************/

func (ws GpsWeekSecond) String() string {
	return fmt.Sprintf("%d %d", ws.Week, ws.Second)
}

/***********************************************/

func formatTemplate(re *regexp.Regexp, format string, verb func(typer byte, flag, fmtStr string, isDefault bool) string) string {
	var (
		flag             string
		width, precision int
		fmtStr           string
		result           = format
	)

	for _, matched := range re.FindAllStringSubmatch(format, -1) {
		flag = ""
		width = -1
		precision = -1

		if len(matched[1]) != 0 {
			flag = matched[1]
		}

		if len(matched[2]) != 0 {
			width, _ = strconv.Atoi(matched[2])
		}

		if len(matched[3]) != 0 {
			precision, _ = strconv.Atoi(matched[3])
		}

		fmtStr = "%"

		if flag != "" {
			fmtStr += flag
		}

		if width >= 0 {
			fmtStr += fmt.Sprintf("%d", width)
		}

		if precision >= 0 {
			fmtStr += fmt.Sprintf(".%d", precision)
		}

		isDefault := flag == "" && width < 0 && precision < 0
		result = strings.ReplaceAll(result, matched[0], verb(matched[4][0], flag, fmtStr, isDefault))
	}

	return result
}

/***********************************************/

func sprintInt(fmtStr, defaultFmt string, isDefault bool, value int) string {
	if isDefault {
		fmtStr += defaultFmt
	} else {
		fmtStr += "d"
	}

	return fmt.Sprintf(fmtStr, value)
}

/***********************************************/
