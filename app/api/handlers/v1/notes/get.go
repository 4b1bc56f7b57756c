package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the user using its id
// @Tags Note
// @Produce json
// @Param X-User-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	user, fail := userID(ctx)
	if fail != nil {
		return *fail
	}

	get, err := note.Find(ctx, user, ctx.Param("id"))

	switch {
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	case get.ID == "":
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   get,
		}
	}
}
