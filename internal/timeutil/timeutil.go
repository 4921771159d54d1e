package timeutil

import "time"

// BusinessTimeZone is the IANA name of the timezone all business dates are
// interpreted in. The municipality operates in Peru.
const BusinessTimeZone = "America/Lima"

var location *time.Location

func init() {
	loc, err := time.LoadLocation(BusinessTimeZone)
	if err != nil {
		// Lima has no DST; a fixed offset is an exact fallback when the
		// tzdata files are unavailable in the container image.
		loc = time.FixedZone("-05", -5*60*60)
	}
	location = loc
}

// Location returns the business timezone location.
func Location() *time.Location {
	return location
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// StartOfDay returns t's calendar day at 00:00:00.000 in the business timezone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

// EndOfDay returns t's calendar day at 23:59:59.999 in the business timezone.
func EndOfDay(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, location)
}

// YearRange returns the inclusive [Jan 1 00:00:00, Dec 31 23:59:59] bounds of
// the given year in the business timezone.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, location)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, location)
	return start, end
}
