package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// Post godoc
// @Summary Create a note
// @Description Create a note for the user, a palette color is picked when none is sent
// @Tags Note
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Owner id"
// @Param note body note.NewNote true "Note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func Post(ctx *gin.Context) handler.Result {
	user, fail := userID(ctx)
	if fail != nil {
		return *fail
	}

	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body: " + err.Error()},
		}
	}
	if err := newN.Validate(); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	created, err := note.Create(ctx, user, newN)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
