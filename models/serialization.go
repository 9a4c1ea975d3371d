package models

// TimeLayout is the ISO-8601 local-time layout (no timezone offset) used for
// registration dates and row timestamps.
const TimeLayout = "2006-01-02T15:04:05"

// Boolean literals used on disk for Citizen.IsActive. Parsing is
// case-insensitive; anything other than "true" (including the empty string
// substituted for a missing column) reads as false.
const (
	BoolTrue  = "True"
	BoolFalse = "False"
)

// FormatBool returns the on-disk literal for b.
func FormatBool(b bool) string {
	if b {
		return BoolTrue
	}
	return BoolFalse
}
