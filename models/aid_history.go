package models

// AidHistoryEntry is one aid-disbursement event or scheduled follow-up for a
// citizen. Entries are append-only and immutable after creation.
type AidHistoryEntry struct {
	ID int64 `json:"id"`

	// CitizenInternalID references Citizen.ID. Referential integrity is the
	// caller's responsibility; the store does not enforce it.
	CitizenInternalID int64 `json:"citizen_internal_id"`

	// EntryType is a free-text tag for the kind of aid or action
	// (e.g. "FoodAid", "CashAid", "MedicalAid", "AdminEntry").
	EntryType string `json:"entry_type"`

	// Date is the event date in "YYYY-MM-DD" form.
	Date string `json:"date"`

	// NextDate is the follow-up due date. Empty means the aid action
	// completed with no follow-up scheduled; non-empty means a future
	// scheduled action.
	NextDate string `json:"next_date"`

	// Timestamp is the ISO-8601 local creation time of the row.
	Timestamp string `json:"timestamp"`
}

// TableName returns the name of the table associated with AidHistoryEntry.
func (e AidHistoryEntry) TableName() string {
	return "aid_history"
}
