package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Param X-User-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	user, fail := userID(ctx)
	if fail != nil {
		return *fail
	}

	deleted, err := note.Delete(ctx, user, ctx.Param("id"))
	switch {
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	case !deleted:
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{Status: http.StatusNoContent}
	}
}
