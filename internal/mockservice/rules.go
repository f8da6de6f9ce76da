package mockservice

import (
	"net/url"
	"strings"
	"time"
	"unicode"

	contract "regsuite/contracts/registration"
	"regsuite/pkg/domain"
)

// MinimumAge is the age in years a citizen must have passed to register.
const MinimumAge = 12

// EarliestBirthYear bounds plausible birth dates from below.
const EarliestBirthYear = 1900

// pythonNone is what the service receives when a client formats a missing value.
const pythonNone = "None"

// validate returns the rejection reason for a registration query, or "" when it is accepted.
// Checks run in field order and the first failure wins.
func validate(q url.Values, now time.Time) string {
	if reason := checkName(q, contract.ParamName); reason != "" {
		return reason
	}
	if reason := checkName(q, contract.ParamSurname); reason != "" {
		return reason
	}
	if !domain.CitizenID(q.Get(contract.ParamCitizenID)).IsNominal() {
		return contract.ReasonCitizenID
	}
	if reason := checkBirthDate(q, now); reason != "" {
		return reason
	}
	if !isWords(supplied(q, contract.ParamOccupation)) {
		return contract.ReasonOccupation
	}
	return ""
}

// checkName applies the name rules. Surname failures reuse the name reasons.
func checkName(q url.Values, param string) string {
	v := supplied(q, param)
	switch {
	case v == "":
		return contract.ReasonNameNone
	case isDigits(v):
		return contract.ReasonNameNumber
	case !isWords(v):
		return contract.ReasonNameSymbol
	}
	return ""
}

func checkBirthDate(q url.Values, now time.Time) string {
	v := supplied(q, contract.ParamBirthDate)
	if v == "" {
		return contract.ReasonBirthDateFormat
	}
	birth, err := time.Parse(domain.DateLayout, v)
	if err != nil || birth.Year() < EarliestBirthYear {
		return contract.ReasonBirthDateFormat
	}
	if !domain.HasReachedAge(birth, now, MinimumAge) {
		return contract.ReasonMinimumAge
	}
	return ""
}

// supplied returns the trimmed parameter, treating a literal "None" as missing.
func supplied(q url.Values, param string) string {
	v := strings.TrimSpace(q.Get(param))
	if v == pythonNone {
		return ""
	}
	return v
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// isWords accepts letters separated by spaces, hyphens or apostrophes.
func isWords(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
