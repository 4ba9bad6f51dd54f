package handler

import (
	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// DataBinder binds the JSON request body to req. Any other content type is rejected.
func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != binding.MIMEJSON {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type %s", c.FullPath(), binding.MIMEJSON)
	}

	if err := c.ShouldBindJSON(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}
