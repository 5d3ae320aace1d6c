package handler

import (
	"locallibrary/internal/domains/catalog/model"
	"locallibrary/internal/domains/catalog/service"
	"locallibrary/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const HomeURL = "/catalog"

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Root - GET /
func (h *Handler) Root(c *gin.Context) {
	response.Redirect(c, HomeURL)
}

// Index - GET /catalog
func (h *Handler) Index(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err)
		return
	}
	response.Page(c, model.IndexTemplate, model.IndexView{
		Title:  "Local Library Home",
		Counts: *counts,
	})
}
