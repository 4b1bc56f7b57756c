package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List the notes of the user, most recently updated first, optionally filtered by a search text
// @Tags Note
// @Produce json
// @Param X-User-Id header string true "Owner id"
// @Param q query string false "Case insensitive text searched in title and content"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	user, fail := userID(ctx)
	if fail != nil {
		return *fail
	}

	list, err := note.List(ctx, user)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   note.Search(list, ctx.Query("q")),
	}
}
