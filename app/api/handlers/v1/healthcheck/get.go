package healthcheck

import (
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

type Health struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Build CRUD API with Golang and MongoDB"`
}

// Get godoc
// @Summary Healthcheck
// @Description Tells whether the api is up
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Health
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body: Health{
			Status:  "success",
			Message: "Build CRUD API with Golang and MongoDB",
		},
	}
}
