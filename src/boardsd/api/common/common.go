// Package common holds the response helpers shared by the boardsd handlers.
package common

import (
	"github.com/bitswalk/boardlist/src/common/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every boardsd error response
type ErrorResponse = errors.Response

// Error sends err with its HTTP status. Errors that are not structured
// become a 500 without their text.
func Error(c *gin.Context, err error) {
	c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
}

// AbortError aborts the request with err
func AbortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, field, message string) {
	Error(c, errors.ErrInvalidRequest.WithField(field).WithMessage(message))
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context) {
	Error(c, errors.ErrRouteNotFound.WithField(c.Request.URL.Path))
}

// AbortTooManyRequests aborts the request with a 429 Too Many Requests response
func AbortTooManyRequests(c *gin.Context) {
	c.Header("Retry-After", "60")
	AbortError(c, errors.ErrRateLimited)
}
