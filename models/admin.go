package models

// Admin represents an administrator account used for back-office access.
// PasswordHash is the salted one-way hash of the admin password; plaintext
// passwords are never persisted.
type Admin struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PasswordHash   string `json:"-"`
	FullName       string `json:"full_name"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
}

// TableName returns the name of the table associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
