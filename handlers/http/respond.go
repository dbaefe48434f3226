package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"kanban-server/apperrors"

	"github.com/gin-gonic/gin"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func ok(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, response{Success: true, Message: message, Data: data})
}

// fail maps an error kind to its transport status. Persistence faults and
// anything unrecognized are logged in full and reported with a safe message.
func fail(c *gin.Context, err error) {
	var (
		validation  *apperrors.ValidationError
		forbidden   *apperrors.ForbiddenError
		conflict    *apperrors.ConflictError
		persistence *apperrors.PersistenceError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "validation failed", Errors: validation.Messages})
	case errors.Is(err, apperrors.ErrTaskNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response{Success: false, Message: err.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, response{Success: false, Message: forbidden.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, response{Success: false, Message: conflict.Message})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response{Success: false, Message: err.Error()})
	case errors.As(err, &persistence):
		log.Printf("persistence failure: %v", persistence)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "database error"})
	default:
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "internal server error"})
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, response{Success: false, Message: "invalid request body", Errors: []string{detail}})
}
