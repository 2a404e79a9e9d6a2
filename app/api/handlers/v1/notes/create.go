package notes

import (
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note with a unique title
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.SingleNote
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func Create(svc *note.Service) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		var newNote note.NewNote
		if err := ctx.ShouldBindJSON(&newNote); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Status: "fail", Message: "Invalid Body"},
			}
		}

		created, err := svc.Create(ctx, newNote)

		switch {
		case err != nil:
			return fail(err)
		case created == nil:
			return handler.Result{
				Status: http.StatusNotFound,
				Body:   handler.Error{Status: "fail", Message: "Note not found"},
			}
		default:
			return handler.Result{
				Status: http.StatusCreated,
				Body: note.SingleNote{
					Status: "success",
					Data:   note.NoteData{Note: *created},
				},
			}
		}
	}
}
