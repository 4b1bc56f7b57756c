package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// Patch godoc
// @Summary Update a note
// @Description Update the fields sent, the note updatedAt is always refreshed
// @Tags Note
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Param note body note.Patch true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [patch]
func Patch(ctx *gin.Context) handler.Result {
	user, fail := userID(ctx)
	if fail != nil {
		return *fail
	}

	var p note.Patch
	if err := ctx.ShouldBindJSON(&p); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body: " + err.Error()},
		}
	}
	if err := p.Validate(); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	updated, err := note.Update(ctx, user, ctx.Param("id"), p)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
