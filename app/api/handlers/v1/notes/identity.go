package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"net/http"
)

// UserHeader carries the id of the identity every note operation is scoped to
const UserHeader = "X-User-Id"

func userID(ctx *gin.Context) (string, *handler.Result) {
	id := ctx.GetHeader(UserHeader)
	if id == "" {
		return "", &handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "missing " + UserHeader + " header"},
		}
	}
	return id, nil
}
