package notes

import (
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Finds a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.SingleNote
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(svc *note.Service) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id := ctx.Param("id")

		found, err := svc.Find(ctx, id)

		switch {
		case err != nil:
			return fail(err)
		case found == nil:
			return notFound(id)
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body: note.SingleNote{
					Status: "success",
					Data:   note.NoteData{Note: *found},
				},
			}
		}
	}
}
