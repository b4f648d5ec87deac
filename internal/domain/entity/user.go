package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID                   string         `bson:"_id,omitempty" json:"id"`
	FirstName            string         `bson:"first_name" json:"first_name"`
	LastName             string         `bson:"last_name" json:"last_name"`
	Email                string         `bson:"email" json:"email"`
	PasswordHash         string         `bson:"password_hash" json:"-"`
	Role                 UserRole       `bson:"role" json:"role"`
	Photo                *string        `bson:"photo,omitempty" json:"photo,omitempty"`
	PhoneNumber          *string        `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Workspaces           []WorkspaceRef `bson:"workspaces" json:"workspaces"`
	IsEmailVerified      bool           `bson:"is_email_verified" json:"is_email_verified"`
	VerificationCode     string         `bson:"email_verification_code,omitempty" json:"-"`
	VerificationExpires  *time.Time     `bson:"email_verification_expires,omitempty" json:"-"`
	PasswordResetToken   string         `bson:"password_reset_token,omitempty" json:"-"`
	PasswordResetExpires *time.Time     `bson:"password_reset_expires,omitempty" json:"-"`
	PasswordChangedAt    *time.Time     `bson:"password_changed_at,omitempty" json:"-"`
	Active               bool           `bson:"active" json:"-"`
	CreatedAt            time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time      `bson:"updated_at" json:"updated_at"`
}

// WorkspaceRef links a user to one workspace they belong to.
type WorkspaceRef struct {
	WorkspaceID string `bson:"workspace_id" json:"workspace_id"`
}

// UserRole represents the platform-level role of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// FullName joins first and last name for email salutations.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. Tokens issued before a password change must be
// rejected by the auth middleware.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return issuedAt.Before(*u.PasswordChangedAt)
}
