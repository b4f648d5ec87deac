package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking).
type AuthHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	VerifyEmail(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPassword(*gin.Context)
	UpdateMyPassword(*gin.Context)
	GetCurrentUser(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
	config      usecasecontract.IConfigProvider
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase, config usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, config: config}
}

const jwtCookieName = "jwt"

func (h *AuthHandler) setJWTCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtCookieName, token, int(h.config.GetJWTCookieExpiry().Seconds()), "/", "", false, true)
}

// Signup handles registration. Pending invitations addressed to the new
// email are consumed as part of the signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login authenticates and sets the jwt cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	h.setJWTCookie(c, token)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{User: dto.ToUserResponse(*user), Token: token})
}

// Logout clears the jwt cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(jwtCookieName, "", -1, "/", "", false, true)
	MessageHandler(c, http.StatusOK, "logged out")
}

// VerifyEmail consumes a signup verification code.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.authUsecase.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "email verified")
}

// ForgotPassword issues a reset email. Always succeeds for valid input
// so the endpoint does not leak which emails exist.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.authUsecase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "if the email exists, a reset link was sent")
}

// ResetPassword consumes the token from the reset link.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.authUsecase.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password has been reset, please log in")
}

// UpdateMyPassword changes the password of the logged-in user and
// rotates the jwt cookie.
func (h *AuthHandler) UpdateMyPassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, err := h.authUsecase.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	h.setJWTCookie(c, token)
	MessageHandler(c, http.StatusOK, "password updated")
}

// GetCurrentUser returns the authenticated user's profile.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
