package notes

import (
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

// List godoc
// @Summary List notes
// @Description Lists a page of notes, oldest first
// @Tags Note
// @Produce json
// @Param page query int false "Page to fetch, starts at 1" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} note.NoteList
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [get]
func List(svc *note.Service) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		if err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Status: "fail", Message: "invalid page"},
			}
		}

		limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
		if err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Status: "fail", Message: "invalid limit"},
			}
		}

		list, err := svc.List(ctx, page, limit)
		if err != nil {
			return fail(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body: note.NoteList{
				Status:  "success",
				Results: len(list),
				Notes:   list,
			},
		}
	}
}
