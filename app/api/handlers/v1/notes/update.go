package notes

import (
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Merges the sent fields into the note and returns the updated note
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Fields to update"
// @Success 200 {object} note.SingleNote
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes/{id} [patch]
func Update(svc *note.Service) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id := ctx.Param("id")

		var update note.UpdateNote
		if err := ctx.ShouldBindJSON(&update); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Status: "fail", Message: "Invalid Body"},
			}
		}

		updated, err := svc.Update(ctx, id, update)

		switch {
		case err != nil:
			return fail(err)
		case updated == nil:
			return notFound(id)
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body: note.SingleNote{
					Status: "success",
					Data:   note.NoteData{Note: *updated},
				},
			}
		}
	}
}
