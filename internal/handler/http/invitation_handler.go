package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// InvitationHandlerInterface defines the methods for the invitation
// handler to allow interface-based dependency injection (for
// testing/mocking).
type InvitationHandlerInterface interface {
	GetWorkspaceInvitations(*gin.Context)
	GetAllPendingInvitations(*gin.Context)
	GetInvitationByToken(*gin.Context)
	CancelInvitation(*gin.Context)
	ResendInvitation(*gin.Context)
}

var _ InvitationHandlerInterface = (*InvitationHandler)(nil)

type InvitationHandler struct {
	invitationUsecase usecasecontract.IInvitationUseCase
}

func NewInvitationHandler(invitationUsecase usecasecontract.IInvitationUseCase) *InvitationHandler {
	return &InvitationHandler{invitationUsecase: invitationUsecase}
}

// GetWorkspaceInvitations lists a workspace's invitations, optionally
// filtered by ?status=.
func (h *InvitationHandler) GetWorkspaceInvitations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var status *entity.InvitationStatus
	if raw := c.Query("status"); raw != "" {
		s := entity.InvitationStatus(raw)
		switch s {
		case entity.InvitationStatusPending, entity.InvitationStatusAccepted,
			entity.InvitationStatusExpired, entity.InvitationStatusCancelled:
			status = &s
		default:
			ErrorHandler(c, apperror.Validation("invalid invitation status filter"))
			return
		}
	}

	invitations, err := h.invitationUsecase.GetWorkspaceInvitations(c.Request.Context(), userID, c.Param("workspaceId"), status)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, invitations)
}

// GetAllPendingInvitations lists live pending invitations across every
// workspace the caller administers. Always returns 200 with a list.
func (h *InvitationHandler) GetAllPendingInvitations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invitations := h.invitationUsecase.GetAllPendingInvitations(c.Request.Context(), userID)
	SuccessHandler(c, http.StatusOK, invitations)
}

// GetInvitationByToken resolves an invitation link for the registration
// page. Public, no authentication.
func (h *InvitationHandler) GetInvitationByToken(c *gin.Context) {
	invitation, err := h.invitationUsecase.GetInvitationByToken(c.Request.Context(), c.Param("invitationToken"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, invitation)
}

// CancelInvitation voids a pending invitation.
func (h *InvitationHandler) CancelInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.invitationUsecase.CancelInvitation(c.Request.Context(), c.Param("invitationId"), userID); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "invitation cancelled")
}

// ResendInvitation re-sends the email of a still-pending invitation.
func (h *InvitationHandler) ResendInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.invitationUsecase.ResendInvitation(c.Request.Context(), c.Param("invitationId"), userID); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "invitation resent")
}
