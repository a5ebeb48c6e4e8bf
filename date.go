package xlsx

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInADay = 86400
	// MaxOADate is the OA value of 9999-12-31T23:59:59.
	MaxOADate = 2958465.999988426
)

var (
	excel1900Epoc = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	excel1904Epoc = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

	firstAllowedDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastAllowedDate  = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	// Excel believes 1900 was a leap year; every serial before this day is off by one.
	firstValidDate = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
)

// DateToOA converts a date to its OLE Automation serial as written by Excel.
// The wall clock of t is used as is, its location is ignored.
func DateToOA(t time.Time) (float64, error) {
	wall := wallClock(t)
	if wall.Before(firstAllowedDate) || wall.After(lastAllowedDate) {
		return 0, fmt.Errorf("date %s is outside of the Excel range: %w", t.Format(time.RFC3339), ErrFormat)
	}
	return dateToOA(wall), nil
}

func dateToOA(t time.Time) float64 {
	t = wallClock(t)
	if t.Before(firstValidDate) {
		t = t.AddDate(0, 0, -1)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := (day.Unix() - excel1900Epoc.Unix()) / secondsInADay
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return float64(days) + float64(seconds)/secondsInADay
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// OAToDate converts an OA serial back to a date in UTC.
func OAToDate(oa float64) time.Time {
	if oa < 60 {
		oa++
	}
	return timeFromExcelTime(oa, false)
}

// TimeToOA converts a time of day or any other span to a fraction of days.
// Sub-second precision is dropped.
func TimeToOA(d time.Duration) float64 {
	return float64(d/time.Second) / secondsInADay
}

// OAToTime is the inverse of TimeToOA, rounded to the millisecond.
func OAToTime(oa float64) time.Duration {
	return time.Duration(math.Round(oa*secondsInADay*1000)) * time.Millisecond
}

func validOATime(oa float64) bool {
	return oa >= 0 && oa <= MaxOADate
}

func timeFromExcelTime(excelTime float64, date1904 bool) time.Time {
	wholeDaysPart := math.Floor(excelTime)
	millis := math.Round((excelTime - wholeDaysPart) * secondsInADay * 1000)
	epoc := excel1900Epoc
	if date1904 {
		epoc = excel1904Epoc
	}
	return epoc.AddDate(0, 0, int(wholeDaysPart)).Add(time.Duration(millis) * time.Millisecond)
}

// date1904Offset is the number of days between the two Excel epochs.
const date1904Offset = 1462

func serialToDate(serial float64, date1904 bool) time.Time {
	if date1904 {
		return timeFromExcelTime(serial, true)
	}
	return OAToDate(serial)
}

// toSerial is the unchecked inverse of serialToDate.
func toSerial(t time.Time, date1904 bool) float64 {
	oa := dateToOA(t)
	if date1904 {
		oa -= date1904Offset
	}
	return oa
}

func dateToSerial(t time.Time, date1904 bool) (float64, error) {
	oa, err := DateToOA(t)
	if err != nil || !date1904 {
		return oa, err
	}
	if oa < date1904Offset {
		return 0, fmt.Errorf("date %s is before 1904: %w", t.Format(time.RFC3339), ErrFormat)
	}
	return oa - date1904Offset, nil
}
