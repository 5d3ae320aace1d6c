package handler

import (
	"errors"

	"locallibrary/internal/domains/bookinstance/model"
	"locallibrary/internal/domains/bookinstance/service"
	"locallibrary/internal/shared/response"
	"locallibrary/internal/shared/utils"
	"locallibrary/internal/shared/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/bookinstances", h.List)
	catalog.GET("/bookinstance/create", h.CreateForm)
	catalog.POST("/bookinstance/create", h.Create)
	catalog.GET("/bookinstance/:id", h.Detail)
	catalog.GET("/bookinstance/:id/delete", h.DeleteForm)
	catalog.POST("/bookinstance/:id/delete", h.Delete)
	catalog.GET("/bookinstance/:id/update", h.UpdateForm)
	catalog.POST("/bookinstance/:id/update", h.Update)
}

func fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrBookInstanceNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalServerError(c, err)
}

func (h *Handler) renderForm(c *gin.Context, title string, instance *model.BookInstance, errs validate.Errors) {
	books, err := h.service.FormBooks(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView(title, instance, books, errs))
}

// renderUpdateForm re-renders against the stored copy, never the submitted one.
func (h *Handler) renderUpdateForm(c *gin.Context, id uuid.UUID, errs validate.Errors) {
	data, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView("Update BookInstance", data.Instance, data.Books, errs))
}

// List - GET /catalog/bookinstances
func (h *Handler) List(c *gin.Context) {
	instances, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.ListTemplate, model.NewListView("Book Instance List", instances))
}

// Detail - GET /catalog/bookinstance/:id
func (h *Handler) Detail(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookInstanceNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DetailTemplate, model.NewDetailView("Book:", detail))
}

// CreateForm - GET /catalog/bookinstance/create
func (h *Handler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Create BookInstance", nil, nil)
}

// Create - POST /catalog/bookinstance/create
func (h *Handler) Create(c *gin.Context) {
	var form model.BookInstanceForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		h.renderForm(c, "Create BookInstance", in.ToEntity(uuid.Nil), errs)
		return
	}

	instance, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(instance.ID))
}

// DeleteForm - GET /catalog/bookinstance/:id/delete
func (h *Handler) DeleteForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if errors.Is(err, model.ErrBookInstanceNotFound) {
		response.Redirect(c, model.ListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DeleteTemplate, model.NewDetailView("Delete BookInstance", detail))
}

// Delete - POST /catalog/bookinstance/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.ListURL)
}

// UpdateForm - GET /catalog/bookinstance/:id/update
func (h *Handler) UpdateForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookInstanceNotFound)
		return
	}

	h.renderUpdateForm(c, id, nil)
}

// Update - POST /catalog/bookinstance/:id/update
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookInstanceNotFound)
		return
	}

	var form model.BookInstanceForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		h.renderUpdateForm(c, id, errs)
		return
	}

	instance, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(instance.ID))
}
