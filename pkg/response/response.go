package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-assistant/pkg/errors"
)

// DefaultErrorMessage is returned for any error that is not an HTTPError.
// Internal details stay in the logs.
const DefaultErrorMessage = "internal server error"

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error string `json:"error"`
}

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends err as {"error": ...}. HTTPErrors keep their status code,
// anything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.AbortWithStatusJSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
		return
	}
	InternalError(c)
}

// BadRequest sends 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{Error: message})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: pkgErrors.ErrUnauthorized.Message})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: pkgErrors.ErrTooManyRequests.Message})
}
