package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
)

// SuccessHandler wraps data in the success envelope.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Data: data})
}

// MessageHandler returns a success envelope carrying only a message.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Message: message})
}

// ErrorHandler serializes an error into the error envelope. Operational
// errors map their kind to a status code; anything else becomes a
// generic 500 so internals never leak to clients.
func ErrorHandler(c *gin.Context, err error) {
	if appErr := apperror.From(err); appErr != nil {
		c.JSON(appErr.StatusCode(), dto.Envelope{Status: "error", Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Envelope{Status: "error", Message: "something went wrong"})
}

// BindAndValidate binds JSON request and validates it.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{Status: "error", Message: err.Error()})
		return err
	}
	return nil
}

// currentUserID extracts the authenticated user id set by the auth
// middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Envelope{Status: "error", Message: "user not authenticated"})
		return "", false
	}
	return userID.(string), true
}
