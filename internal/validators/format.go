package validators

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the only date representation accepted by the store.
const DateLayout = "2006-01-02"

// adultAge is the minimal driver age in full years.
const adultAge = 18

// Compiled once, never mutated afterwards; safe for concurrent use.
var (
	namePattern    = regexp.MustCompile(`^[A-Za-z]+$`)
	addressPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,/]+$`)
	cityPattern    = regexp.MustCompile(`^[A-Za-z]+$`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	licensePattern = regexp.MustCompile(`^[0-9]{4}[ABEIKMHOPCTX]{2}-[1-7]$`)
	loginPattern   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// timeNow is replaced in tests to pin "today".
var timeNow = time.Now

// ValidName reports whether s consists of latin letters only.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidAddress reports whether s consists of latin letters, digits,
// whitespace and the characters . , /
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// ValidCity reports whether s consists of latin letters only.
func ValidCity(s string) bool {
	return cityPattern.MatchString(s)
}

// ValidLogin reports whether s is a non-empty string of latin letters,
// digits and underscores.
func ValidLogin(s string) bool {
	return loginPattern.MatchString(s)
}

// ValidDateFormat reports whether s looks like YYYY-MM-DD. It does not check
// that the date exists in the calendar; see ValidDate.
func ValidDateFormat(s string) bool {
	return datePattern.MatchString(s)
}

// ValidLicense reports whether plate follows the registration plate grammar:
// four digits, two letters out of ABEIKMHOPCTX, a dash and a region digit 1-7.
func ValidLicense(plate string) bool {
	return licensePattern.MatchString(plate)
}

// ValidDate reports whether s matches YYYY-MM-DD and names an existing day.
// February has 29 days in leap years.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	// the pattern guarantees fixed positions of all parts
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	maxDay := daysInMonth(year, month)
	return maxDay > 0 && day >= 1 && day <= maxDay
}

// daysInMonth returns the number of days in month of year, or 0 if month is
// out of 1..12.
func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidAge reports whether a person born on birthdate is at least 18 years
// old today. The comparison is calendar-only; a birthday exactly 18 years ago
// is valid. The format of birthdate is expected to be checked by the caller;
// an unparsable value is reported as invalid.
func ValidAge(birthdate string) bool {
	born, err := time.Parse(DateLayout, birthdate)
	if err != nil {
		return false
	}

	return !born.AddDate(adultAge, 0, 0).After(today())
}

// ValidPeriod reports whether start is not after end. Both dates must be in
// YYYY-MM-DD form and exist in the calendar, otherwise ErrInvalidPeriodFormat
// is returned. Equal dates form a valid one-day period.
func ValidPeriod(start, end string) (bool, error) {
	if !datePattern.MatchString(start) || !datePattern.MatchString(end) {
		return false, ErrInvalidPeriodFormat
	}

	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return false, ErrInvalidPeriodFormat
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return false, ErrInvalidPeriodFormat
	}

	return !startDate.After(endDate), nil
}

// today returns the current local date at midnight UTC so that it compares
// cleanly with dates produced by time.Parse.
func today() time.Time {
	y, m, d := timeNow().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
