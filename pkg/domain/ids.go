// Package domain provides the value types shared by the registration client and the fake service.
package domain

import (
	dErrors "regsuite/pkg/domain-errors"
)

// CitizenIDLength is the nominal number of digits in a citizen ID.
const CitizenIDLength = 13

// CitizenID is the addressing key for registration records.
// It is carried as text because the suite deliberately submits non-numeric IDs.
type CitizenID string

func (id CitizenID) String() string { return string(id) }

// IsNominal reports whether the ID is exactly CitizenIDLength ASCII digits.
func (id CitizenID) IsNominal() bool {
	if len(id) != CitizenIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// Truncate returns the ID cut to n bytes. Used to derive an ID that cannot match a stored record.
func (id CitizenID) Truncate(n int) CitizenID {
	if n < 0 {
		n = 0
	}
	if n >= len(id) {
		return id
	}
	return id[:n]
}

// ParseCitizenID accepts only nominal IDs. Use at the boundary of destructive operations.
func ParseCitizenID(s string) (CitizenID, error) {
	id := CitizenID(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "citizen ID cannot be empty")
	}
	if !id.IsNominal() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "citizen ID must be 13 digits")
	}
	return id, nil
}
