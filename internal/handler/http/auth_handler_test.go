package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/ShaiBatonya/starquestDevServer/internal/handler/http"
	dto "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/middleware"
	mocks "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/mocks"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/config"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupAuthRouter(mockUsecase *mocks.MockAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/forgotPassword", h.ForgotPassword)
	r.PATCH("/resetPassword/:token", h.ResetPassword)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleWare(mockUsecase))
	protected.GET("/me", h.GetCurrentUser)
	protected.PATCH("/updateMyPassword", h.UpdateMyPassword)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/signup", dto.SignupRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           "test@example.com",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestSignup_PasswordMismatch(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/signup", dto.SignupRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           "test@example.com",
		Password:        "Password123!",
		PasswordConfirm: "Different123!",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PasswordConfirm")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailSignup = true
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/signup", dto.SignupRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           "test@example.com",
		Password:        "Password123!",
		PasswordConfirm: "Password123!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")

	var jwtCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "jwt" {
			jwtCookie = cookie
		}
	}
	if assert.NotNil(t, jwtCookie, "login must set the jwt cookie") {
		assert.Equal(t, "mock_access_token", jwtCookie.Value)
		assert.True(t, jwtCookie.HttpOnly)
	}
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect email or password")
}

func TestLogout_ClearsCookie(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "jwt" {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
}

func TestGetCurrentUser(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "mock_access_token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}

func TestGetCurrentUser_BearerFallback(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer mock_access_token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not logged in")
}

func TestGetCurrentUser_InvalidToken(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailAuthenticate = true
	r := setupAuthRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "stale"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestUpdateMyPassword_RotatesCookie(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	body, _ := json.Marshal(dto.UpdatePasswordRequest{
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword123!",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/updateMyPassword", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "mock_access_token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "jwt" && cookie.Value == "mock_access_token" {
			found = true
		}
	}
	assert.True(t, found, "password change issues a fresh jwt cookie")
}

func TestResetPassword_InvalidToken(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailResetPassword = true
	r := setupAuthRouter(mockUsecase)

	body, _ := json.Marshal(dto.ResetPasswordRequest{
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/resetPassword/stale-token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or has expired")
}

func TestForgotPassword_AlwaysSucceeds(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := postJSON(r, "/forgotPassword", dto.ForgotPasswordRequest{Email: "anyone@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "if the email exists")
}
