// Package models holds the registration record the suite submits.
package models

import (
	"fmt"
	"net/url"
	"strconv"

	contract "regsuite/contracts/registration"
	"regsuite/pkg/domain"
	dErrors "regsuite/pkg/domain-errors"
)

// Record is a single citizen registration. Every field is optional so a
// scenario can drop exactly one of them.
type Record struct {
	Name        Optional[string]
	Surname     Optional[string]
	CitizenID   Optional[domain.CitizenID]
	BirthDate   Optional[string]
	Occupation  Optional[string]
	Address     Optional[string]
	PhoneNumber Optional[string]
	IsRisk      Optional[bool]
}

// Baseline values. Every scenario starts from a record built with these.
const (
	BaselineName        = "Vichisorn"
	BaselineSurname     = "Wejsupakul"
	BaselineCitizenID   = domain.CitizenID("1101402211111")
	BaselineBirthDate   = "2000-10-26"
	BaselineOccupation  = "Student"
	BaselineAddress     = "Test Register POST API"
	BaselinePhoneNumber = "0964590546"
	BaselineIsRisk      = false
)

// Baseline returns a fresh, known-valid record.
func Baseline() Record {
	return Record{
		Name:        Some(BaselineName),
		Surname:     Some(BaselineSurname),
		CitizenID:   Some(BaselineCitizenID),
		BirthDate:   Some(BaselineBirthDate),
		Occupation:  Some(BaselineOccupation),
		Address:     Some(BaselineAddress),
		PhoneNumber: Some(BaselinePhoneNumber),
		IsRisk:      Some(BaselineIsRisk),
	}
}

// ID returns the citizen ID, or "" when absent.
func (r Record) ID() domain.CitizenID {
	return r.CitizenID.OrElse("")
}

// Values encodes the record as query parameters. Absent fields are omitted.
func (r Record) Values() url.Values {
	v := url.Values{}
	putString(v, contract.ParamName, r.Name)
	putString(v, contract.ParamSurname, r.Surname)
	if id, ok := r.CitizenID.Get(); ok {
		v.Set(contract.ParamCitizenID, id.String())
	}
	putString(v, contract.ParamBirthDate, r.BirthDate)
	putString(v, contract.ParamOccupation, r.Occupation)
	putString(v, contract.ParamAddress, r.Address)
	putString(v, contract.ParamPhoneNumber, r.PhoneNumber)
	if risk, ok := r.IsRisk.Get(); ok {
		v.Set(contract.ParamIsRisk, FormatBool(risk))
	}
	return v
}

// Set replaces the field named by its query parameter with value.
func (r *Record) Set(field, value string) error {
	switch field {
	case contract.ParamName:
		r.Name = Some(value)
	case contract.ParamSurname:
		r.Surname = Some(value)
	case contract.ParamCitizenID:
		r.CitizenID = Some(domain.CitizenID(value))
	case contract.ParamBirthDate:
		r.BirthDate = Some(value)
	case contract.ParamOccupation:
		r.Occupation = Some(value)
	case contract.ParamAddress:
		r.Address = Some(value)
	case contract.ParamPhoneNumber:
		r.PhoneNumber = Some(value)
	case contract.ParamIsRisk:
		risk, err := ParseBool(value)
		if err != nil {
			return err
		}
		r.IsRisk = Some(risk)
	default:
		return unknownField(field)
	}
	return nil
}

// Unset marks the field named by its query parameter as not supplied.
func (r *Record) Unset(field string) error {
	switch field {
	case contract.ParamName:
		r.Name = None[string]()
	case contract.ParamSurname:
		r.Surname = None[string]()
	case contract.ParamCitizenID:
		r.CitizenID = None[domain.CitizenID]()
	case contract.ParamBirthDate:
		r.BirthDate = None[string]()
	case contract.ParamOccupation:
		r.Occupation = None[string]()
	case contract.ParamAddress:
		r.Address = None[string]()
	case contract.ParamPhoneNumber:
		r.PhoneNumber = None[string]()
	case contract.ParamIsRisk:
		r.IsRisk = None[bool]()
	default:
		return unknownField(field)
	}
	return nil
}

// Clear empties every field.
func (r *Record) Clear() {
	*r = Record{}
}

// FormatBool renders booleans the way the service has always received them.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool accepts the FormatBool form as well as strconv's.
func ParseBool(s string) (bool, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("invalid boolean %q", s))
	}
	return b, nil
}

func putString(v url.Values, key string, o Optional[string]) {
	if s, ok := o.Get(); ok {
		v.Set(key, s)
	}
}

func unknownField(field string) error {
	return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown registration field %q", field))
}
