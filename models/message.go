package models

// MessageEntry is a free-text note attached to a citizen.
// Entries are append-only and immutable after creation.
type MessageEntry struct {
	ID                int64  `json:"id"`
	CitizenInternalID int64  `json:"citizen_internal_id"`
	Message           string `json:"message"`
	Timestamp         string `json:"timestamp"`
}

// TableName returns the name of the table associated with MessageEntry.
func (m MessageEntry) TableName() string {
	return "messages"
}
