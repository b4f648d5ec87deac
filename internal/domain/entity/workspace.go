package entity

import (
	"time"
)

// Workspace is the tenant boundary: members, positions, planets and the
// task backlog all live embedded in a single document, so membership and
// quest mutations are atomic at the workspace level.
type Workspace struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Rules       string          `bson:"rules" json:"rules"`
	Image       *string         `bson:"image,omitempty" json:"image,omitempty"`
	Positions   []Position      `bson:"positions" json:"positions"`
	Planets     []string        `bson:"planets" json:"planets"`
	Backlog     []Task          `bson:"backlog" json:"backlog"`
	Users       []WorkspaceUser `bson:"users" json:"users"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// Position is a named, colored role tag assignable to workspace members.
type Position struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Color string `bson:"color" json:"color"`
}

// WorkspaceRole is the per-workspace role controlling invite and
// task-management permissions.
type WorkspaceRole string

const (
	WorkspaceRoleAdmin  WorkspaceRole = "admin"
	WorkspaceRoleMentor WorkspaceRole = "mentor"
	WorkspaceRoleMentee WorkspaceRole = "mentee"
)

// ValidWorkspaceRole reports whether s names one of the three roles.
func ValidWorkspaceRole(s string) bool {
	switch WorkspaceRole(s) {
	case WorkspaceRoleAdmin, WorkspaceRoleMentor, WorkspaceRoleMentee:
		return true
	}
	return false
}

// WorkspaceUser is a membership entry embedded in Workspace.Users.
// IsVerified flips to true once the member accepts their invitation.
type WorkspaceUser struct {
	UserID                   string        `bson:"user_id" json:"user_id"`
	InviterID                *string       `bson:"inviter_id,omitempty" json:"inviter_id,omitempty"`
	Role                     WorkspaceRole `bson:"role" json:"role"`
	Position                 *string       `bson:"position,omitempty" json:"position,omitempty"`
	Planet                   *string       `bson:"planet,omitempty" json:"planet,omitempty"`
	IsVerified               bool          `bson:"is_verified" json:"is_verified"`
	VerificationToken        string        `bson:"verification_token,omitempty" json:"-"`
	VerificationTokenExpires *time.Time    `bson:"verification_token_expires,omitempty" json:"-"`
	Quest                    []UserTask    `bson:"quest" json:"quest"`
	Stars                    int           `bson:"stars" json:"stars"`
	JoinedAt                 time.Time     `bson:"joined_at" json:"joined_at"`
}

// Planets is the fixed six-value zone set every workspace starts with.
var Planets = []string{
	"Nebulae",
	"Solaris minor",
	"Solaris major",
	"White dwarf",
	"Supernova",
	"Space station",
}

// ValidPlanet reports whether p is one of the six workspace zones.
func ValidPlanet(p string) bool {
	for _, planet := range Planets {
		if planet == p {
			return true
		}
	}
	return false
}

// FindUser returns the membership entry for userID, or nil.
func (w *Workspace) FindUser(userID string) *WorkspaceUser {
	for i := range w.Users {
		if w.Users[i].UserID == userID {
			return &w.Users[i]
		}
	}
	return nil
}

// FindTask returns the backlog task with the given id, or nil.
func (w *Workspace) FindTask(taskID string) *Task {
	for i := range w.Backlog {
		if w.Backlog[i].ID == taskID {
			return &w.Backlog[i]
		}
	}
	return nil
}

// HasUser reports whether userID already holds a membership entry.
func (w *Workspace) HasUser(userID string) bool {
	return w.FindUser(userID) != nil
}
