package dto

import (
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	PhoneNumber     *string  `json:"phone_number,omitempty"`
	IsEmailVerified bool     `json:"is_email_verified"`
	WorkspaceIDs    []string `json:"workspace_ids"`
	CreatedAt       string   `json:"created_at"`
}

// ToUserResponse converts an entity.User to its DTO.
func ToUserResponse(user entity.User) UserResponse {
	workspaceIDs := make([]string, 0, len(user.Workspaces))
	for _, ref := range user.Workspaces {
		workspaceIDs = append(workspaceIDs, ref.WorkspaceID)
	}
	return UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Role:            string(user.Role),
		PhoneNumber:     user.PhoneNumber,
		IsEmailVerified: user.IsEmailVerified,
		WorkspaceIDs:    workspaceIDs,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// WorkspaceResponse is the DTO for a workspace. Members is populated
// only when the requester administers the workspace; everyone else gets
// the count.
type WorkspaceResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Rules       string                    `json:"rules"`
	Planets     []string                  `json:"planets"`
	Positions   []entity.Position         `json:"positions"`
	MemberCount int                       `json:"member_count"`
	Members     []WorkspaceMemberResponse `json:"members,omitempty"`
	BacklogSize int                       `json:"backlog_size"`
	CreatedAt   string                    `json:"created_at"`
}

// WorkspaceMemberResponse is one membership row of the admin view.
type WorkspaceMemberResponse struct {
	UserID     string  `json:"user_id"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Planet     *string `json:"planet,omitempty"`
	IsVerified bool    `json:"is_verified"`
	Stars      int     `json:"stars"`
}

// ToWorkspaceResponse converts an entity.Workspace to its summary DTO.
func ToWorkspaceResponse(workspace entity.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Description: workspace.Description,
		Rules:       workspace.Rules,
		Planets:     workspace.Planets,
		Positions:   workspace.Positions,
		MemberCount: len(workspace.Users),
		BacklogSize: len(workspace.Backlog),
		CreatedAt:   workspace.CreatedAt.Format(time.RFC3339),
	}
}

// ToWorkspaceResponseFor converts a workspace for a specific requester,
// attaching the member roster when the requester is a workspace admin.
func ToWorkspaceResponseFor(workspace entity.Workspace, userID string) WorkspaceResponse {
	response := ToWorkspaceResponse(workspace)
	requester := workspace.FindUser(userID)
	if requester == nil || requester.Role != entity.WorkspaceRoleAdmin {
		return response
	}
	response.Members = make([]WorkspaceMemberResponse, 0, len(workspace.Users))
	for i := range workspace.Users {
		member := &workspace.Users[i]
		response.Members = append(response.Members, WorkspaceMemberResponse{
			UserID:     member.UserID,
			Role:       string(member.Role),
			Position:   member.Position,
			Planet:     member.Planet,
			IsVerified: member.IsVerified,
			Stars:      member.Stars,
		})
	}
	return response
}

// ToWorkspaceResponses converts a workspace slice for a requester.
func ToWorkspaceResponses(workspaces []entity.Workspace, userID string) []WorkspaceResponse {
	responses := make([]WorkspaceResponse, 0, len(workspaces))
	for _, workspace := range workspaces {
		responses = append(responses, ToWorkspaceResponseFor(workspace, userID))
	}
	return responses
}
