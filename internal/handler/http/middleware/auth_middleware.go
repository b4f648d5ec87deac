package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

const jwtCookieName = "jwt"

// AuthMiddleWare resolves the jwt cookie (or a Bearer header as a
// fallback), authenticates the token and stores the user id in the Gin
// context. Authentication enforces password-change invalidation: tokens
// issued before the user's last password change are rejected.
func AuthMiddleWare(authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Status: "error", Message: "you are not logged in"})
			return
		}

		user, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Status: "error", Message: "invalid or expired session"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(jwtCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
