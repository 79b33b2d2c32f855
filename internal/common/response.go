package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/pkg/logger"
)

// ErrorBody is the {error} shape the kudos client reads its message from.
type ErrorBody struct {
	Error string `json:"error"`
}

// ValidationBody is the 400 shape for failed required-field checks.
type ValidationBody struct {
	Errors []string `json:"errors"`
}

// FieldErrorBody carries the first failure as error and the full list as
// errors, so clients reading either key get a message.
type FieldErrorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// SuccessResponse writes data as the raw JSON body with 200.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse writes data as the raw JSON body with 201.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContentResponse answers a successful delete.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse writes {error: message}. err is logged, never sent.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	if err != nil {
		event := logger.GetLogger().Warn()
		if status >= http.StatusInternalServerError {
			event = logger.GetLogger().Error()
		}
		event.Err(err).
			Str("request_id", c.GetString("request_id")).
			Int("status", status).
			Msg(message)
	}
	c.JSON(status, ErrorBody{Error: message})
}

// ValidationErrorResponse writes 400 {errors: [...]}.
func ValidationErrorResponse(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, ValidationBody{Errors: errs})
}

// FieldErrorResponse writes 400 {error: errs[0], errors: [...]}.
func FieldErrorResponse(c *gin.Context, errs []string) {
	body := FieldErrorBody{Errors: errs}
	if len(errs) > 0 {
		body.Error = errs[0]
	}
	c.JSON(http.StatusBadRequest, body)
}
