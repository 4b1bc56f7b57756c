package handler

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what every api handler returns, the wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the default error body
type Error struct {
	Message string `json:"message" example:"notes not found"`
}

// Wrapper adapts a handler returning a Result into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		switch {
		case r.Status == 0:
			ctx.Status(http.StatusInternalServerError)
		case r.Body == nil:
			ctx.Status(r.Status)
		default:
			ctx.JSON(r.Status, r.Body)
		}
	}
}
