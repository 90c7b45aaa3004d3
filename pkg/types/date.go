package types

// Date modifiers. A date is either a plain point, qualified (about, before,
// after), a two-point range or span, or an unparseable free-text value.
const (
	ModNone     = "none"
	ModAbout    = "about"
	ModBefore   = "before"
	ModAfter    = "after"
	ModRange    = "range"
	ModSpan     = "span"
	ModTextOnly = "textonly"
)

// Date is a point or range in time. Zero components mean "unknown": a date
// with Year 0 has no resolvable year and sorts as unknown. Month or Day 0
// clamp to 1 for sorting purposes.
//
// Dates that could not be parsed into a structured form are carried as
// text-only (Modifier ModTextOnly, Text set) and sort as unknown; they are
// never an error.
type Date struct {
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
	Day      int    `json:"day,omitempty"`
	Modifier string `json:"modifier,omitempty"`
	// Stop point for range and span dates.
	Year2  int    `json:"year2,omitempty"`
	Month2 int    `json:"month2,omitempty"`
	Day2   int    `json:"day2,omitempty"`
	Text   string `json:"text,omitempty"`
}

// IsEmpty reports whether the date carries no information at all.
func (d Date) IsEmpty() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0 && d.Text == "" &&
		(d.Modifier == "" || d.Modifier == ModNone)
}

// SortValue derives a single signed integer for linear chronological
// comparison: the serial day number of the date's start point in the
// proleptic Gregorian calendar, with 1 January of year 1 as day 1.
//
// A date with no resolvable year (including text-only dates) yields 0,
// which means "unknown", not "year zero". Callers comparing two sort
// values must gate on both sides being > 0 first.
func (d Date) SortValue() int {
	if d.Modifier == ModTextOnly || d.Year == 0 {
		return 0
	}
	return serialDay(d.Year, d.Month, d.Day)
}

// serialDay computes the proleptic Gregorian serial day number for a date,
// clamping month and day 0 to 1. Day 1 is 0001-01-01.
func serialDay(year, month, day int) int {
	if month < 1 {
		month = 1
	}
	if day < 1 {
		day = 1
	}
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	// Julian day number of 0001-01-01 (proleptic Gregorian) is 1721426.
	return jdn - 1721425
}
