package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/mindful-notes/platform/web/handler"
	"github.com/ribgsilva/mindful-notes/sys"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the database is reachable
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	if db := sys.R.Database; db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   Status{Status: "database unavailable"},
			}
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
