package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// FormatWeek renders "YYYY년 M월 W주" for the week containing t. A week
// belongs to the month containing its Thursday, so the first days of a
// month can still be labeled as the previous month's last week (and the
// last days as the next month's first week).
func FormatWeek(t time.Time) string {
	thursday := t.AddDate(0, 0, int(time.Thursday)-int(t.Weekday()))
	week := (thursday.Day() + 6) / 7
	return fmt.Sprintf("%d년 %d월 %d주", thursday.Year(), int(thursday.Month()), week)
}

// FormatMonth renders "YYYY년 M월".
func FormatMonth(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return FormatDateWithDay(t, t.Day())
}

// FormatDateWithDay renders t's year and month as YYYY-MM-DD with the day
// component replaced by day. Used to stamp a specific day-of-month onto a
// reference month without reconstructing a time value.
func FormatDateWithDay(t time.Time, day int) string {
	return fmt.Sprintf("%d-%s-%s", t.Year(), FillZero(float64(int(t.Month())), 2), FillZero(float64(day), 2))
}

// FillZero left-pads the decimal rendering of value with zeros to at least
// size characters. Renderings already at least size characters long,
// including fractional ones, are returned unchanged.
func FillZero(value float64, size int) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	for len(s) < size {
		s = "0" + s
	}
	return s
}
