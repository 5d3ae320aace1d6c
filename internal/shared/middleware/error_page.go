package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ErrorTemplate = "error.html"

// ErrorView backs error.html.
type ErrorView struct {
	Title   string
	Status  int
	Message string
	// Detail is the underlying error text, shown only when debugging.
	Detail string
}

// ErrorPage renders error.html for requests that were aborted with an error
// and have not written a body yet. With debug off, 5xx messages are generic.
func ErrorPage(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		renderError(c, status, c.Errors.Last().Err, debug)
	}
}

func renderError(c *gin.Context, status int, err error, debug bool) {
	view := ErrorView{
		Title:   http.StatusText(status),
		Status:  status,
		Message: http.StatusText(status),
	}
	if err != nil && (status < http.StatusInternalServerError || debug) {
		view.Message = capitalize(err.Error())
	}
	if err != nil && debug {
		view.Detail = err.Error()
	}

	c.HTML(status, ErrorTemplate, view)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
