package handlers

import (
	"github.com/RAprogramm/notes-api/app/api/handlers/v1/healthcheck"
	"github.com/RAprogramm/notes-api/app/api/handlers/v1/notes"
	"github.com/RAprogramm/notes-api/business/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"github.com/gin-gonic/gin"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, svc *note.Service) {
	r.GET("/v1/notes", handler.Wrapper(notes.List(svc)))
	r.POST("/v1/notes", handler.Wrapper(notes.Create(svc)))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get(svc)))
	r.PATCH("/v1/notes/:id", handler.Wrapper(notes.Update(svc)))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete(svc)))
}
