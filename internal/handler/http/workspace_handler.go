package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// WorkspaceHandlerInterface defines the methods for the workspace handler
// to allow interface-based dependency injection (for testing/mocking).
type WorkspaceHandlerInterface interface {
	CreateWorkspace(*gin.Context)
	GetMyWorkspaces(*gin.Context)
	GetWorkspaceUsers(*gin.Context)
	DeleteWorkspace(*gin.Context)
	SendInvitation(*gin.Context)
	AcceptInvitation(*gin.Context)
	CreatePosition(*gin.Context)
	GetPositions(*gin.Context)
}

var _ WorkspaceHandlerInterface = (*WorkspaceHandler)(nil)

type WorkspaceHandler struct {
	workspaceUsecase  usecasecontract.IWorkspaceUseCase
	invitationUsecase usecasecontract.IInvitationUseCase
}

func NewWorkspaceHandler(workspaceUsecase usecasecontract.IWorkspaceUseCase, invitationUsecase usecasecontract.IInvitationUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceUsecase: workspaceUsecase, invitationUsecase: invitationUsecase}
}

// CreateWorkspace creates a workspace with the caller as admin.
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkspaceRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	workspace, err := h.workspaceUsecase.CreateWorkspace(c.Request.Context(), userID, req.Name, req.Description, req.Rules)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToWorkspaceResponseFor(*workspace, userID))
}

// GetMyWorkspaces lists the workspaces the caller belongs to.
func (h *WorkspaceHandler) GetMyWorkspaces(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaces, err := h.workspaceUsecase.GetUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToWorkspaceResponses(workspaces, userID))
}

// GetWorkspaceUsers lists the workspace members.
func (h *WorkspaceHandler) GetWorkspaceUsers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	users, err := h.workspaceUsecase.GetWorkspaceUsers(c.Request.Context(), userID, c.Param("workspaceId"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// DeleteWorkspace removes a workspace and voids its pending invitations.
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.workspaceUsecase.DeleteWorkspace(c.Request.Context(), userID, c.Param("workspaceId")); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "workspace deleted")
}

// SendInvitation invites an email address into a workspace.
func (h *WorkspaceHandler) SendInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.SendInvitationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.invitationUsecase.SendInvitation(c.Request.Context(), userID, usecasecontract.SendInvitationInput{
		WorkspaceID:  req.WorkspaceID,
		InviteeEmail: req.InviteeEmail,
		InviteeRole:  entity.WorkspaceRole(req.InviteeRole),
		PositionID:   req.PositionID,
		Planet:       req.Planet,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// AcceptInvitation joins the caller via an invitation link. The token is
// either a standalone invitation token (new-user path) or a member
// verification token (existing-user path); both are tried.
func (h *WorkspaceHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	token := c.Param("invitationToken")

	workspace, err := h.invitationUsecase.AcceptInvitationByToken(c.Request.Context(), token, userID)
	if err != nil && (apperror.IsKind(err, apperror.KindValidation) || apperror.IsKind(err, apperror.KindNotFound)) {
		workspace, err = h.invitationUsecase.AcceptMemberInvitation(c.Request.Context(), token, userID)
	}
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToWorkspaceResponseFor(*workspace, userID))
}

// CreatePosition adds a position to the workspace taxonomy.
func (h *WorkspaceHandler) CreatePosition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePositionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	position, err := h.workspaceUsecase.CreatePosition(c.Request.Context(), userID, c.Param("workspaceId"), req.Name, req.Color)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, position)
}

// GetPositions lists the workspace's positions.
func (h *WorkspaceHandler) GetPositions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	positions, err := h.workspaceUsecase.GetPositions(c.Request.Context(), userID, c.Param("workspaceId"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, positions)
}
