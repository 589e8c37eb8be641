package datetime

import (
	"testing"
	"time"
)

func TestDateTimeAddYear(t *testing.T) {
	tests := []struct {
		name  string
		date  DateTime
		years int
		want  DateTime
	}{
		{"leap day into common year", DateTime{2020, 2, 29, 0, 0, 0}, 1, DateTime{2021, 3, 1, 0, 0, 0}},
		{"leap day into leap year", DateTime{2020, 2, 29, 0, 0, 0}, 4, DateTime{2024, 2, 29, 0, 0, 0}},
		{"leap day backwards", DateTime{2020, 2, 29, 10, 0, 0}, -1, DateTime{2019, 3, 1, 10, 0, 0}},
		{"century is not leap", DateTime{2096, 2, 29, 0, 0, 0}, 4, DateTime{2100, 3, 1, 0, 0, 0}},
		{"plain", DateTime{2021, 1, 31, 23, 59, 59}, 3, DateTime{2024, 1, 31, 23, 59, 59}},
		{"other months untouched", DateTime{2021, 4, 31, 0, 0, 0}, 1, DateTime{2022, 4, 31, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.AddYear(tt.years); got != tt.want {
				t.Errorf("%v.AddYear(%d) = %v, want %v", tt.date, tt.years, got, tt.want)
			}
		})
	}
}

func TestDateTimeAddMonth(t *testing.T) {
	tests := []struct {
		name   string
		date   DateTime
		months int
		want   DateTime
	}{
		{"31st into february", DateTime{2021, 1, 31, 0, 0, 0}, 1, DateTime{2021, 3, 3, 0, 0, 0}},
		{"31st into leap february", DateTime{2020, 1, 31, 0, 0, 0}, 1, DateTime{2020, 3, 2, 0, 0, 0}},
		{"31st into april", DateTime{2021, 3, 31, 8, 0, 0}, 1, DateTime{2021, 5, 1, 8, 0, 0}},
		{"carry into year", DateTime{2021, 12, 31, 0, 0, 0}, 2, DateTime{2022, 3, 3, 0, 0, 0}},
		{"more than a year", DateTime{2021, 11, 15, 0, 0, 0}, 13, DateTime{2022, 12, 15, 0, 0, 0}},
		{"whole year", DateTime{2021, 12, 31, 0, 0, 0}, 12, DateTime{2022, 12, 31, 0, 0, 0}},
		{"fold crosses december", DateTime{2021, 11, 35, 0, 0, 0}, 1, DateTime{2022, 1, 4, 0, 0, 0}},
		{"backwards", DateTime{2021, 3, 31, 0, 0, 0}, -1, DateTime{2021, 3, 3, 0, 0, 0}},
		{"borrow from year", DateTime{2021, 1, 15, 0, 0, 0}, -1, DateTime{2020, 12, 15, 0, 0, 0}},
		{"borrow more than a year", DateTime{2021, 1, 15, 0, 0, 0}, -13, DateTime{2019, 12, 15, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.AddMonth(tt.months); got != tt.want {
				t.Errorf("%v.AddMonth(%d) = %v, want %v", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

func TestDateTimeAddFixedUnits(t *testing.T) {
	tests := []struct {
		name string
		got  DateTime
		want DateTime
	}{
		{"week", DateTime{2021, 1, 1, 5, 0, 0}.AddWeek(1), DateTime{2021, 1, 8, 5, 0, 0}},
		{"week backwards", DateTime{2021, 1, 1, 5, 0, 0}.AddWeek(-1), DateTime{2020, 12, 25, 5, 0, 0}},
		{"day into leap day", DateTime{2020, 2, 28, 0, 0, 0}.AddDay(1), DateTime{2020, 2, 29, 0, 0, 0}},
		{"day past leap day", DateTime{2020, 2, 28, 0, 0, 0}.AddDay(2), DateTime{2020, 3, 1, 0, 0, 0}},
		{"day a year", DateTime{2021, 3, 1, 0, 0, 0}.AddDay(365), DateTime{2022, 3, 1, 0, 0, 0}},
		{"hour into new year", DateTime{2021, 12, 31, 23, 0, 0}.AddHour(1), DateTime{2022, 1, 1, 0, 0, 0}},
		{"hour time zone", DateTime{2023, 11, 14, 22, 13, 20}.AddHour(8), DateTime{2023, 11, 15, 6, 13, 20}},
		{"minute backwards", DateTime{2021, 1, 1, 0, 0, 0}.AddMinute(-1), DateTime{2020, 12, 31, 23, 59, 0}},
		{"second backwards", DateTime{2021, 1, 1, 0, 0, 0}.AddSecond(-1), DateTime{2020, 12, 31, 23, 59, 59}},
		{"second forwards", DateTime{2016, 12, 31, 23, 59, 59}.AddSecond(18), DateTime{2017, 1, 1, 0, 0, 17}},
		{"unnormalized hour", DateTime{2021, 1, 1, 30, 0, 0}.AddHour(0), DateTime{2021, 1, 2, 6, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestUnix2DateTime(t *testing.T) {
	for _, sec := range []int64{0, 1, -1, 59, 86400, 315964800, 951782400, 1483228800, 1700000000, 2147483647, 2147483648, 4102444799} {
		u := time.Unix(sec, 0).UTC()
		want := DateTime{u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second()}

		if got := Unix2DateTime(sec); got != want {
			t.Errorf("Unix2DateTime(%d) = %v, want %v", sec, got, want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := map[int]bool{1900: false, 2000: true, 2020: true, 2021: false, 2100: false, 2400: true}

	for year, want := range tests {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2021, 1, 31}, {2021, 2, 28}, {2020, 2, 29}, {1900, 2, 28}, {2000, 2, 29},
		{2021, 4, 30}, {2021, 12, 31}, {2021, 13, 28}, {2020, 0, 29},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		date DateTime
		want int
	}{
		{DateTime{2021, 1, 1, 0, 0, 0}, 1},
		{DateTime{2020, 3, 1, 0, 0, 0}, 61},
		{DateTime{2021, 3, 1, 0, 0, 0}, 60},
		{DateTime{2021, 12, 31, 0, 0, 0}, 365},
		{DateTime{2020, 12, 31, 23, 59, 59}, 366},
	}

	for _, tt := range tests {
		if got := tt.date.DayOfYear(); got != tt.want {
			t.Errorf("%v.DayOfYear() = %d, want %d", tt.date, got, tt.want)
		}
	}
}
