package handler

import (
	"strconv"

	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/gin-gonic/gin"
)

// GetPathParameter parses the named path parameter as an id. A bad request error is pushed onto the
// context and false returned if it is not an unsigned integer.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	value := c.Param(parameter)
	id, err := strconv.ParseUint(value, 10, strconv.IntSize)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("error parsing %q: %q is not a valid id", parameter, value))
		return 0, false
	}
	return uint(id), true
}
