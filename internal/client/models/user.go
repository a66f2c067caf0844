package models

import "time"

// Role is the coarse authorization level carried in the session credential.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated principal as returned by the login endpoint.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// User is an account row from the admin user listing.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Section  string `json:"section,omitempty"`
}

// RegisterRequest creates a new account. Role defaults server-side to
// student when empty.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role,omitempty"`
}

// BulkUser is one row of a bulk-provisioning CSV upload.
type BulkUser struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role"`
	Section  string `json:"section,omitempty"`
}

// BulkResult summarises a bulk-register call.
type BulkResult struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// LogEntry is one audit record from the admin log feed.
type LogEntry struct {
	ID        string    `json:"_id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}
