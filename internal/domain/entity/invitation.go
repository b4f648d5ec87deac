package entity

import (
	"strings"
	"time"
)

// InvitationStatus is the lifecycle state of a workspace invitation.
type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusExpired   InvitationStatus = "expired"
	InvitationStatusCancelled InvitationStatus = "cancelled"
)

// Invitation is a standalone, token-bearing record offering an email
// address membership in a workspace. At most one pending invitation may
// exist per (workspace, email) pair; a partial unique index in the
// invitation collection is the authoritative guard.
type Invitation struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	WorkspaceID     string           `bson:"workspace_id" json:"workspace_id"`
	InviterUserID   string           `bson:"inviter_user_id" json:"inviter_user_id"`
	InviteeEmail    string           `bson:"invitee_email" json:"invitee_email"`
	InviteeRole     WorkspaceRole    `bson:"invitee_role" json:"invitee_role"`
	InvitationToken string           `bson:"invitation_token" json:"-"`
	TokenExpires    time.Time        `bson:"token_expires" json:"token_expires"`
	Status          InvitationStatus `bson:"status" json:"status"`
	PositionID      *string          `bson:"position_id,omitempty" json:"position_id,omitempty"`
	Planet          *string          `bson:"planet,omitempty" json:"planet,omitempty"`
	AcceptedAt      *time.Time       `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	CancelledAt     *time.Time       `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}

// IsExpired reports whether the invitation can no longer be accepted.
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.Status != InvitationStatusPending || !i.TokenExpires.After(now)
}

// NormalizeEmail lowercases and trims an invitee email so lookups and the
// uniqueness index agree on the key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
