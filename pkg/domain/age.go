package domain

import "time"

// DateLayout is the ISO calendar date format the registration service expects.
const DateLayout = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// YearsBefore returns the calendar date the given number of years before now.
// A negative value yields a date in the future. Uses AddDate so Feb 29 rolls to Mar 1.
func YearsBefore(now time.Time, years int) time.Time {
	return now.UTC().AddDate(-years, 0, 0)
}

// HasReachedAge reports whether someone born on birthDate has had their
// birthday for the given age strictly before now's calendar day.
//
// Example:
//
//	birth := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	HasReachedAge(birth, time.Date(2012, 1, 15, 0, 0, 0, 0, time.UTC), 12) // false, birthday is today
//	HasReachedAge(birth, time.Date(2012, 1, 16, 0, 0, 0, 0, time.UTC), 12) // true
func HasReachedAge(birthDate, now time.Time, years int) bool {
	birthday := truncateDay(birthDate).AddDate(years, 0, 0)
	return birthday.Before(truncateDay(now))
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
