package calendar

import "time"

// NoDay marks a grid cell that falls outside the month.
const NoDay = 0

const daysPerWeek = 7

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month. The month is
// not restricted to [1,12]: 0 means December of year-1, 13 means January
// of year+1, and so on.
func DaysInMonth(year, month int) int {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}

	switch time.Month(month) {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// WeekDates returns the 7 consecutive dates of the Sunday-first week
// containing ref, crossing month and year boundaries as needed.
func WeekDates(ref time.Time) []time.Time {
	sunday := time.Date(ref.Year(), ref.Month(), ref.Day()-int(ref.Weekday()), 0, 0, 0, 0, ref.Location())

	dates := make([]time.Time, daysPerWeek)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeeksInMonth returns the week rows covering ref's month. Each row holds
// 7 day-of-month numbers; leading and trailing cells outside the month are
// filled with NoDay.
func WeeksInMonth(ref time.Time) [][]int {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	leading := int(firstOfMonth.Weekday())
	daysInMonth := DaysInMonth(ref.Year(), int(ref.Month()))

	weeks := make([][]int, 0, 6)
	week := make([]int, daysPerWeek)
	cell := leading

	for day := 1; day <= daysInMonth; day++ {
		week[cell] = day
		cell++
		if cell == daysPerWeek {
			weeks = append(weeks, week)
			week = make([]int, daysPerWeek)
			cell = 0
		}
	}
	if cell > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
