package models

// Citizen represents a registered aid recipient.
// It contains identity attributes, household information used for
// prioritization, and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type Citizen struct {
	// ID is the internal unique identifier of the citizen, assigned by the
	// persistence layer. Strictly positive, never reused.
	ID int64 `json:"id"`

	// NationalID is the government-issued identifier.
	// Unique across all active and inactive citizen rows; used as the login
	// identifier during authentication.
	NationalID string `json:"national_id"`

	// FullName is the citizen's display name.
	FullName string `json:"full_name"`

	// DateOfBirth in "YYYY-MM-DD" form. May be empty.
	DateOfBirth string `json:"date_of_birth"`

	// PhoneNumber is a free-form contact number. May be empty.
	PhoneNumber string `json:"phone_number"`

	// Address is a free-form residential address. May be empty.
	Address string `json:"address"`

	// HouseholdMembers is the number of people in the citizen's household.
	HouseholdMembers int64 `json:"household_members"`

	// Dependents is the number of dependents in the household.
	Dependents int64 `json:"dependents"`

	// NeedsDescription is a free-text description of the citizen's needs.
	NeedsDescription string `json:"needs_description"`

	// PriorityScore ranks the citizen for aid distribution.
	// A zero score is also what the listing filter treats as "not received".
	PriorityScore float64 `json:"priority_score"`

	// IsActive marks whether the citizen may authenticate.
	// Rows are never deleted; deactivation flips this flag instead.
	IsActive bool `json:"is_active"`

	// RegistrationDate is the ISO-8601 local timestamp (no offset) stamped
	// at registration time. Kept as a string to preserve the stored value
	// byte-for-byte across read/write cycles.
	RegistrationDate string `json:"registration_date"`

	// SecretCodeHash is the salted one-way hash of the citizen's secret
	// code. It is never exposed via JSON and is stripped from records
	// returned by authentication and point lookup.
	SecretCodeHash string `json:"-"`
}

// TableName returns the name of the table associated with the Citizen model.
func (c Citizen) TableName() string {
	return "citizens"
}

// CitizenRegistration carries the caller-supplied fields for a new citizen.
// SecretCode is plaintext here and only here; it is hashed before anything
// touches disk.
type CitizenRegistration struct {
	NationalID       string  `json:"national_id"`
	FullName         string  `json:"full_name"`
	SecretCode       string  `json:"secret_code"`
	DateOfBirth      string  `json:"date_of_birth"`
	PhoneNumber      string  `json:"phone_number"`
	Address          string  `json:"address"`
	HouseholdMembers int64   `json:"household_members"`
	Dependents       int64   `json:"dependents"`
	NeedsDescription string  `json:"needs_description"`
	PriorityScore    float64 `json:"priority_score"`
}

// CitizenFilter selects a subset of citizens in list operations.
type CitizenFilter string

const (
	// FilterNone lists every citizen.
	FilterNone CitizenFilter = ""

	// FilterReceived keeps citizens whose priority score is greater than
	// zero. This is the score-based "received aid" proxy used by listing;
	// it is a distinct concept from the history-based check in the aid
	// service and the two can legitimately disagree.
	FilterReceived CitizenFilter = "received"

	// FilterNotReceived keeps citizens whose priority score is exactly zero.
	FilterNotReceived CitizenFilter = "not_received"
)
