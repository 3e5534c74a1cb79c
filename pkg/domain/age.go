package domain

import "time"

// AgeOn returns the number of completed years between birthDate and now.
// Uses calendar arithmetic (AddDate) so a birthday counts from midnight UTC
// of that day; a Feb 29 birthday is reached on Mar 1 in non-leap years.
//
// Example:
//
//	birthDate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC) // day before 35th birthday
//	AgeOn(birthDate, now) // returns 34
func AgeOn(birthDate, now time.Time) int {
	b := birthDate.UTC()
	n := now.UTC()
	if n.Before(b) {
		return 0
	}
	age := n.Year() - b.Year()
	if n.Before(b.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
