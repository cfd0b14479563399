package pricing

import "time"

// HourWindow returns the [start, end) bounds of the clock hour containing
// now, in now's location.
func HourWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return start, start.Add(time.Hour)
}

// DayWindow returns the [start, end) bounds of the calendar day containing t.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// IsPeakHour compares the orders already placed this hour, excluding the
// one being priced, against the restaurant threshold.
func IsPeakHour(ordersThisHour int64, threshold int) bool {
	return ordersThisHour >= int64(threshold)
}
