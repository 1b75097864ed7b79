package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every successful response
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is the body of every failed response. Error carries the wrapped cause for logs
// and debugging; Message is safe to show to the user.
type ErrorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// JSONResponse sends data wrapped in an Envelope
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

// JSONError sends an ErrorEnvelope and aborts the handler chain
func JSONError(c *gin.Context, status int, err error, message string) {
	cause := message
	if err != nil {
		cause = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Status: status, Message: message, Error: cause})
}
