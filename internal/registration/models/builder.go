package models

import (
	"time"

	"regsuite/pkg/domain"
)

// RecordBuilder provides a fluent interface for building registration records.
// It starts from Baseline so each call site only states what it changes.
type RecordBuilder struct {
	record Record
}

// NewRecordBuilder creates a builder seeded with the baseline record.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{record: Baseline()}
}

func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.record.Name = Some(name)
	return b
}

func (b *RecordBuilder) WithoutName() *RecordBuilder {
	b.record.Name = None[string]()
	return b
}

func (b *RecordBuilder) WithSurname(surname string) *RecordBuilder {
	b.record.Surname = Some(surname)
	return b
}

func (b *RecordBuilder) WithoutSurname() *RecordBuilder {
	b.record.Surname = None[string]()
	return b
}

func (b *RecordBuilder) WithCitizenID(id domain.CitizenID) *RecordBuilder {
	b.record.CitizenID = Some(id)
	return b
}

func (b *RecordBuilder) WithoutCitizenID() *RecordBuilder {
	b.record.CitizenID = None[domain.CitizenID]()
	return b
}

func (b *RecordBuilder) WithBirthDate(date string) *RecordBuilder {
	b.record.BirthDate = Some(date)
	return b
}

// WithBirthDateYearsAgo sets the birth date relative to now; negative years are in the future.
func (b *RecordBuilder) WithBirthDateYearsAgo(now time.Time, years int) *RecordBuilder {
	return b.WithBirthDate(domain.FormatDate(domain.YearsBefore(now, years)))
}

func (b *RecordBuilder) WithoutBirthDate() *RecordBuilder {
	b.record.BirthDate = None[string]()
	return b
}

func (b *RecordBuilder) WithOccupation(occupation string) *RecordBuilder {
	b.record.Occupation = Some(occupation)
	return b
}

func (b *RecordBuilder) WithoutOccupation() *RecordBuilder {
	b.record.Occupation = None[string]()
	return b
}

// Build returns a copy of the record.
func (b *RecordBuilder) Build() Record {
	return b.record
}
