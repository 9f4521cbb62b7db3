package dateparse

import (
	"fmt"
	"strconv"
	"time"
)

// Format controls how ambiguous numeric dates such as "1/2/25" are read.
type Format int

const (
	FormatMDY Format = iota // month/day/year (US)
	FormatDMY               // day/month/year (EU)
	FormatYMD               // year/month/day
)

// ParseFormat converts a config string ("MDY", "DMY", "YMD") to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "MDY", "mdy":
		return FormatMDY, nil
	case "DMY", "dmy":
		return FormatDMY, nil
	case "YMD", "ymd":
		return FormatYMD, nil
	}
	return FormatMDY, fmt.Errorf("unknown date format %q", s)
}

// Date is a civil calendar date. It carries no timezone; the caller decides
// which location it is anchored in.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf extracts the civil date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON renders the date as an ISO "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// AddDays returns the date n calendar days later, normalizing across month
// and year boundaries.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// Weekday returns the day of week this date falls on.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// TimeOfDay is a wall-clock time with minute precision and no date attached.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON renders the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// Match is one recognized date expression in the scanned text. Start and End
// are byte offsets into the original input, half-open. When the expression
// carries no time clause HasTime is false and Time is meaningless; callers
// must treat that as "no time set", never as midnight.
type Match struct {
	Start   int
	End     int
	Date    Date
	Time    TimeOfDay
	HasTime bool
}

// Options are the per-user settings that influence date recognition.
type Options struct {
	Format      Format
	StartOfWeek time.Weekday
}
