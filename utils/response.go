package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every successful response is wrapped in.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIError is the envelope for every failure. It doubles as an error value so
// services can return it and let the handler boundary shape the response.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(statusCode int, message string, errs ...string) *APIError {
	if errs == nil {
		errs = []string{}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

// OK writes an enveloped success response.
func OK(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Fail writes an enveloped failure response and aborts the chain so no
// downstream handler can write a second body.
func Fail(c *gin.Context, statusCode int, message string, errs ...string) {
	c.AbortWithStatusJSON(statusCode, NewAPIError(statusCode, message, errs...))
}

// FailWith maps an error value onto the envelope. *APIError keeps its status
// and message; anything else becomes an opaque 500.
func FailWith(c *gin.Context, err error) {
	if apiErr, ok := err.(*APIError); ok {
		c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
		return
	}
	Fail(c, http.StatusInternalServerError, "Internal Server Error")
}
