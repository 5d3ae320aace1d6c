// Package response writes HTML pages, redirects and the small JSON bodies
// used by the operational endpoints.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ========== HTML ==========

// Page renders the named template with status 200.
func Page(c *gin.Context, name string, view interface{}) {
	c.HTML(http.StatusOK, name, view)
}

// Redirect sends a 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// ========== ERRORS ==========
// The ErrorPage middleware renders the page once the chain unwinds.

func abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.Status(status)
	c.Abort()
}

func NotFound(c *gin.Context, err error) {
	abort(c, http.StatusNotFound, err)
}

func InternalServerError(c *gin.Context, err error) {
	abort(c, http.StatusInternalServerError, err)
}

// ========== JSON ==========

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func BadRequest(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, err)
}
