package notes

import (
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(svc *note.Service) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id := ctx.Param("id")

		deleted, err := svc.Delete(ctx, id)

		switch {
		case err != nil:
			return fail(err)
		case !deleted:
			return notFound(id)
		default:
			return handler.Result{Status: http.StatusNoContent}
		}
	}
}
