// Package registration describes the wire contract of the citizen registration service.
package registration

// ContractVersion identifies the observed contract the suite asserts against.
const ContractVersion = "v0.1.0"

// Endpoint paths.
const (
	PathRegistration = "/registration"
	PathHealth       = "/health"
	PathMetrics      = "/metrics"
)

// Query parameter names accepted by POST /registration.
const (
	ParamName        = "name"
	ParamSurname     = "surname"
	ParamCitizenID   = "citizen_id"
	ParamBirthDate   = "birth_date"
	ParamOccupation  = "occupation"
	ParamAddress     = "address"
	ParamPhoneNumber = "phone_number"
	ParamIsRisk      = "is_risk"
)

// FeedbackResponse is the body returned by POST /registration.
// A rejected registration still answers 200 with this body.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// FailurePrefix precedes every rejection reason in a feedback string.
const FailurePrefix = "registration failed: "

// SuccessFeedback accompanies a 201.
const SuccessFeedback = "registration success!"

// Rejection reasons observed from the service.
const (
	ReasonNameNumber      = "name cannot be number!"
	ReasonNameSymbol      = "name cannot be symbol!"
	ReasonNameNone        = "name cannot be None!"
	ReasonCitizenID       = "invalid citizen ID"
	ReasonBirthDateFormat = "invalid birth date format"
	ReasonMinimumAge      = "not archived minimum age"
	ReasonOccupation      = "invalid occupation"
)

// Reasons lists every rejection reason in the catalogue.
var Reasons = []string{
	ReasonNameNumber,
	ReasonNameSymbol,
	ReasonNameNone,
	ReasonCitizenID,
	ReasonBirthDateFormat,
	ReasonMinimumAge,
	ReasonOccupation,
}

// Registration is the body of GET /registration/{citizen_id} on the fake service.
type Registration struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	CitizenID   string `json:"citizen_id"`
	BirthDate   string `json:"birth_date"`
	Occupation  string `json:"occupation"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	IsRisk      bool   `json:"is_risk"`
}
