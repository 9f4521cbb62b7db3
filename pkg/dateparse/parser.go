package dateparse

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Parser recognizes the first date/time expression in free-form text.
// Relative terms ("tomorrow", "next friday") are resolved against an explicit
// reference instant in the parser's timezone; the parser never reads a wall
// clock itself.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves relative dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse scans text left to right and returns the first recognizable date
// expression, or nil when none is found. It never fails.
func (p *Parser) Parse(text string, now time.Time, opts Options) *Match {
	return p.ParseFrom(text, 0, now, opts)
}

// ParseFrom behaves like Parse but ignores anything that starts before byte
// offset from. Used to probe for a second date expression after a match.
func (p *Parser) ParseFrom(text string, from int, now time.Time, opts Options) *Match {
	words := splitWords(text)
	today := DateOf(now.In(p.location))

	for i := range words {
		if words[i].start < from {
			continue
		}
		if m := p.matchAt(words, i, from, today, opts); m != nil {
			return m
		}
	}
	return nil
}

// matchAt tries every date form at word i, most specific first. A structural
// match at an earlier position always beats a later one, so the first hit
// wins.
func (p *Parser) matchAt(words []word, i, from int, today Date, opts Options) *Match {
	type matcher func([]word, int, Date, Options) (Date, int, bool)

	for _, try := range []matcher{
		matchISO,
		matchMonthName,
		matchNumeric,
		matchDayName,
		matchRelative,
	} {
		date, consumed, ok := try(words, i, today, opts)
		if !ok {
			continue
		}

		m := &Match{Date: date}
		first, last := i, i+consumed-1
		first, last, m.Time, m.HasTime = attachTime(words, first, last, from)
		m.Start = words[first].start
		m.End = words[last].end
		return m
	}
	return nil
}

// --- individual date forms ---

// matchISO recognizes strict YYYY-MM-DD.
func matchISO(words []word, i int, _ Date, _ Options) (Date, int, bool) {
	s := words[i].text
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, 0, false
	}
	y, ok1 := digits(s[0:4])
	m, ok2 := digits(s[5:7])
	d, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, 0, false
	}
	date, ok := makeDate(y, m, d)
	return date, 1, ok
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// matchMonthName recognizes "Jan 23", "23 January" and either form with a
// trailing 4-digit year. Month names are unambiguous under every Format.
func matchMonthName(words []word, i int, today Date, _ Options) (Date, int, bool) {
	if i+1 >= len(words) {
		return Date{}, 0, false
	}

	var month time.Month
	var day int
	var ok bool

	if month, ok = monthNames[lower(words[i])]; ok {
		if day, ok = smallNumber(words[i+1].text, 2); !ok {
			return Date{}, 0, false
		}
	} else if day, ok = smallNumber(words[i].text, 2); ok {
		if month, ok = monthNames[lower(words[i+1])]; !ok {
			return Date{}, 0, false
		}
	} else {
		return Date{}, 0, false
	}

	consumed := 2
	year := today.Year
	if i+2 < len(words) {
		if y, ok := digits(words[i+2].text); ok && len(words[i+2].text) == 4 {
			year = y
			consumed = 3
		}
	}

	date, ok := makeDate(year, int(month), day)
	return date, consumed, ok
}

// matchNumeric recognizes slash or dash dates with 2-3 numeric components:
// "1/2", "1/2/25", "2026/01/05", "15-1-2026". When neither position exceeds
// 12 the month/day order comes from opts.Format; a position over 12 is
// unambiguously the day. Both over 12 is treated as literal text.
func matchNumeric(words []word, i int, today Date, opts Options) (Date, int, bool) {
	s := words[i].text

	sep := "/"
	if !strings.Contains(s, "/") {
		if !strings.Contains(s, "-") {
			return Date{}, 0, false
		}
		sep = "-"
	}

	parts := strings.Split(s, sep)
	if len(parts) < 2 || len(parts) > 3 {
		return Date{}, 0, false
	}
	nums := make([]int, len(parts))
	for idx, part := range parts {
		n, ok := digits(part)
		if !ok || len(part) > 4 {
			return Date{}, 0, false
		}
		nums[idx] = n
	}

	var year, a, b int
	var aIsMonth bool

	if len(nums) == 3 {
		switch {
		case len(parts[0]) == 4 || opts.Format == FormatYMD:
			year, a, b = nums[0], nums[1], nums[2]
			aIsMonth = true
		default:
			year, a, b = nums[2], nums[0], nums[1]
			if len(parts[2]) == 1 || len(parts[2]) == 3 {
				return Date{}, 0, false
			}
			aIsMonth = opts.Format == FormatMDY
		}
	} else {
		year = today.Year
		a, b = nums[0], nums[1]
		aIsMonth = opts.Format != FormatDMY
	}

	if year < 100 {
		year += 2000
	}

	month, day, ok := resolveMonthDay(a, b, aIsMonth)
	if !ok {
		return Date{}, 0, false
	}
	date, ok := makeDate(year, month, day)
	return date, 1, ok
}

// resolveMonthDay applies the >12 disambiguation rule: a component over 12
// must be the day, and if both exceed 12 there is no date here.
func resolveMonthDay(a, b int, aIsMonth bool) (month, day int, ok bool) {
	switch {
	case a > 12 && b > 12:
		return 0, 0, false
	case a > 12:
		return b, a, true
	case b > 12:
		return a, b, true
	case aIsMonth:
		return a, b, true
	default:
		return b, a, true
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// matchDayName recognizes "Monday", "this monday" and "next monday".
// A bare or "this" weekday resolves within the current week, rolling into the
// next week if that day has already passed; "next" always lands in the week
// strictly after the current one, relative to opts.StartOfWeek.
func matchDayName(words []word, i int, today Date, opts Options) (Date, int, bool) {
	w := lower(words[i])
	consumed := 1
	next := false

	if w == "next" || w == "this" {
		if i+1 >= len(words) {
			return Date{}, 0, false
		}
		next = w == "next"
		w = lower(words[i+1])
		consumed = 2
	}

	target, ok := weekdayNames[w]
	if !ok {
		return Date{}, 0, false
	}

	todayIdx := weekIndex(today.Weekday(), opts.StartOfWeek)
	targetIdx := weekIndex(target, opts.StartOfWeek)

	var days int
	if next {
		days = (7 - todayIdx) + targetIdx
	} else {
		days = targetIdx - todayIdx
		if days < 0 {
			days += 7
		}
	}
	return today.AddDays(days), consumed, true
}

// weekIndex is the position of d within a week starting at startOfWeek.
func weekIndex(d, startOfWeek time.Weekday) int {
	return (int(d) - int(startOfWeek) + 7) % 7
}

// matchRelative recognizes "today", "tomorrow", "yesterday", "next week",
// "next month" and "in N days|weeks|months" with N in [1,365].
func matchRelative(words []word, i int, today Date, opts Options) (Date, int, bool) {
	switch lower(words[i]) {
	case "today":
		return today, 1, true
	case "tomorrow":
		return today.AddDays(1), 1, true
	case "yesterday":
		return today.AddDays(-1), 1, true
	case "next":
		if i+1 >= len(words) {
			return Date{}, 0, false
		}
		switch lower(words[i+1]) {
		case "week":
			todayIdx := weekIndex(today.Weekday(), opts.StartOfWeek)
			return today.AddDays(7 - todayIdx), 2, true
		case "month":
			first := time.Date(today.Year, today.Month+1, 1, 0, 0, 0, 0, time.UTC)
			return DateOf(first), 2, true
		}
		return Date{}, 0, false
	case "in":
		if i+2 >= len(words) {
			return Date{}, 0, false
		}
		n, ok := digits(words[i+1].text)
		if !ok || n < 1 || n > 365 {
			return Date{}, 0, false
		}
		switch lower(words[i+2]) {
		case "day", "days":
			return today.AddDays(n), 3, true
		case "week", "weeks":
			return today.AddDays(n * 7), 3, true
		case "month", "months":
			t := time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
			return DateOf(t), 3, true
		}
		return Date{}, 0, false
	}
	return Date{}, 0, false
}

// --- time clause ---

// attachTime extends the matched word range [first,last] with an adjacent
// time clause: trailing "at 5pm" / "17:30" is preferred, then a leading one.
// Words before byte offset from are never consumed.
func attachTime(words []word, first, last, from int) (int, int, TimeOfDay, bool) {
	// trailing
	if j := last + 1; j < len(words) {
		if lower(words[j]) == "at" && j+1 < len(words) {
			if t, ok := parseClock(words[j+1].text, true); ok {
				return first, j + 1, t, true
			}
		}
		if t, ok := parseClock(words[j].text, false); ok {
			return first, j, t, true
		}
	}

	// leading
	if first >= 2 && lower(words[first-2]) == "at" && words[first-2].start >= from {
		if t, ok := parseClock(words[first-1].text, true); ok {
			return first - 2, last, t, true
		}
	}
	if first >= 1 && words[first-1].start >= from {
		if t, ok := parseClock(words[first-1].text, false); ok {
			return first - 1, last, t, true
		}
	}

	return first, last, TimeOfDay{}, false
}

// parseClock parses "17:30", "5pm", "5:30pm", "7am" and, when allowBare is
// set (directly after "at"), a bare hour like "7". allowBare is off elsewhere
// so plain numbers in the text are not mistaken for times.
func parseClock(s string, allowBare bool) (TimeOfDay, bool) {
	s = strings.ToLower(s)

	meridiem := byte(0)
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		meridiem = s[len(s)-2]
		s = s[:len(s)-2]
	}

	var hour, minute int
	var ok bool
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		if hour, ok = smallNumber(s[:colon], 2); !ok {
			return TimeOfDay{}, false
		}
		mm := s[colon+1:]
		if len(mm) != 2 {
			return TimeOfDay{}, false
		}
		if minute, ok = digits(mm); !ok || minute > 59 {
			return TimeOfDay{}, false
		}
	} else {
		if meridiem == 0 && !allowBare {
			return TimeOfDay{}, false
		}
		if hour, ok = smallNumber(s, 2); !ok {
			return TimeOfDay{}, false
		}
	}

	if meridiem != 0 {
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == 'p' {
			hour += 12
		}
	} else if hour > 23 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// --- word scanning helpers ---

// word is a whitespace-delimited token with surrounding punctuation trimmed.
// start/end are byte offsets of the trimmed core in the original text.
type word struct {
	text  string
	start int
	end   int
}

func lower(w word) string {
	return strings.ToLower(w.text)
}

func splitWords(s string) []word {
	var words []word
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		if w, ok := trimWord(s[start:end], start); ok {
			words = append(words, w)
		}
		start = -1
	}

	for i, r := range s {
		if unicode.IsSpace(r) {
			flush(i)
		} else if start < 0 {
			start = i
		}
	}
	flush(len(s))
	return words
}

// trimWord strips enclosing punctuation so "tomorrow," or "(Jan" match their
// keyword. Offsets track the trimmed core.
func trimWord(s string, offset int) (word, bool) {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if !strings.ContainsRune("([{'\"", r) {
			break
		}
		s = s[size:]
		offset += size
	}
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !strings.ContainsRune(".,;:!?)]}'\"", r) {
			break
		}
		s = s[:len(s)-size]
	}
	if s == "" {
		return word{}, false
	}
	return word{text: s, start: offset, end: offset + len(s)}, true
}

// digits parses a non-empty all-digit string. Anything longer than 9 digits
// is rejected before it can overflow.
func digits(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// smallNumber parses an all-digit string of at most maxDigits digits.
func smallNumber(s string, maxDigits int) (int, bool) {
	if len(s) > maxDigits {
		return 0, false
	}
	return digits(s)
}

// makeDate validates the calendar date (month range, day-in-month).
func makeDate(year, month, day int) (Date, bool) {
	if month < 1 || month > 12 || day < 1 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, true
}
