package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req. An empty body leaves req
// zero-valued so required-field checks report every missing field.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
