package handler

import (
	"errors"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/service"
	"locallibrary/internal/shared/response"
	"locallibrary/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the author pages under the catalog group.
func (h *Handler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/authors", h.List)
	catalog.GET("/author/create", h.CreateForm)
	catalog.POST("/author/create", h.Create)
	catalog.GET("/author/:id", h.Detail)
	catalog.GET("/author/:id/delete", h.DeleteForm)
	catalog.POST("/author/:id/delete", h.Delete)
	catalog.GET("/author/:id/update", h.UpdateForm)
	catalog.POST("/author/:id/update", h.Update)
}

// fail maps not-found to 404 and everything else to 500.
func fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrAuthorNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalServerError(c, err)
}

// List - GET /catalog/authors
func (h *Handler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.ListTemplate, model.NewListView("Author List", authors))
}

// Detail - GET /catalog/author/:id
func (h *Handler) Detail(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrAuthorNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DetailTemplate, model.NewDetailView("Author Detail", detail))
}

// CreateForm - GET /catalog/author/create
func (h *Handler) CreateForm(c *gin.Context) {
	response.Page(c, model.FormTemplate, model.NewFormView("Create Author", nil, nil))
}

// Create - POST /catalog/author/create
func (h *Handler) Create(c *gin.Context) {
	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		candidate := in.ToEntity(uuid.Nil)
		response.Page(c, model.FormTemplate, model.NewFormView("Create Author", candidate, errs))
		return
	}

	author, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(author.ID))
}

// DeleteForm - GET /catalog/author/:id/delete
func (h *Handler) DeleteForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if errors.Is(err, model.ErrAuthorNotFound) {
		response.Redirect(c, model.ListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DeleteTemplate, model.NewDetailView("Delete Author", detail))
}

// Delete - POST /catalog/author/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrAuthorHasBooks):
		response.Page(c, model.DeleteTemplate, model.NewDetailView("Delete Author", detail))
	case err == nil, errors.Is(err, model.ErrAuthorNotFound):
		response.Redirect(c, model.ListURL)
	default:
		fail(c, err)
	}
}

// UpdateForm - GET /catalog/author/:id/update
func (h *Handler) UpdateForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrAuthorNotFound)
		return
	}

	author, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView("Update Author", author, nil))
}

// Update - POST /catalog/author/:id/update
// On validation failure the form is re-rendered from the stored author.
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrAuthorNotFound)
		return
	}

	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		current, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		response.Page(c, model.FormTemplate, model.NewFormView("Update Author", current, errs))
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(author.ID))
}
