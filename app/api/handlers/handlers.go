package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/mindful-notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/v1/notes", handler.Wrapper(notes.List))
	r.POST("/v1/notes", handler.Wrapper(notes.Post))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get))
	r.PATCH("/v1/notes/:id", handler.Wrapper(notes.Patch))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete))
}
