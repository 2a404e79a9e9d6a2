// Package handler contains the plumbing to adapt route functions to gin.
package handler

import "github.com/gin-gonic/gin"

// Result carries the status code and the body to write for a request.
type Result struct {
	Status int
	Body   interface{}
}

// Error is the response envelope for requests that did not succeed.
type Error struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Wrapper adapts a route function into a gin handler, writing its result as json.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
