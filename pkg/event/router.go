package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/events", handler.FindAll)
	r.POST("/events", handler.Create)
	r.GET("/events/:id", handler.Find)
	r.PUT("/events/:id", handler.Update)
	r.DELETE("/events/:id", handler.Delete)
}
