package testutil

import (
	"fmt"

	"regsuite/pkg/domain"
)

// CitizenIDPrefix starts every generated fixture ID. It shares the baseline's
// first six digits so fixtures look like real IDs.
const CitizenIDPrefix = "110140"

// CitizenID returns a deterministic, nominal 13-digit ID for index i.
func CitizenID(i int) domain.CitizenID {
	return domain.CitizenID(fmt.Sprintf("%s%07d", CitizenIDPrefix, i%10_000_000))
}

// CitizenIDs returns n distinct nominal IDs.
func CitizenIDs(n int) []domain.CitizenID {
	ids := make([]domain.CitizenID, n)
	for i := range ids {
		ids[i] = CitizenID(i)
	}
	return ids
}

// MalformedCitizenIDs are IDs the registration service rejects and that a
// delete must never be sent for.
var MalformedCitizenIDs = []domain.CitizenID{
	"",
	"11014022111",
	"11014022111111111",
	"citizen_id data",
	"☺☺☺☺☺☺☺☺☺☺☺☺☺",
	"*",
}
