package handler

import (
	"errors"

	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/service"
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
	catalog.GET("/genres", h.List)
	catalog.GET("/genre/create", h.CreateForm)
	catalog.POST("/genre/create", h.Create)
	catalog.GET("/genre/:id", h.Detail)
	catalog.GET("/genre/:id/delete", h.DeleteForm)
	catalog.POST("/genre/:id/delete", h.Delete)
	catalog.GET("/genre/:id/update", h.UpdateForm)
	catalog.POST("/genre/:id/update", h.Update)
}

func fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrGenreNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalServerError(c, err)
}

// List - GET /catalog/genres
func (h *Handler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.ListTemplate, model.NewListView("Genre List", genres))
}

// Detail - GET /catalog/genre/:id
func (h *Handler) Detail(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrGenreNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DetailTemplate, model.NewDetailView("Genre Detail", detail))
}

// CreateForm - GET /catalog/genre/create
func (h *Handler) CreateForm(c *gin.Context) {
	response.Page(c, model.FormTemplate, model.NewFormView("Create Genre", nil, nil))
}

// Create - POST /catalog/genre/create
// A name matching an existing genre ignoring case redirects to that genre.
func (h *Handler) Create(c *gin.Context) {
	var form model.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		response.Page(c, model.FormTemplate, model.NewFormView("Create Genre", in.ToEntity(uuid.Nil), errs))
		return
	}

	genre, _, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(genre.ID))
}

// DeleteForm - GET /catalog/genre/:id/delete
func (h *Handler) DeleteForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if errors.Is(err, model.ErrGenreNotFound) {
		response.Redirect(c, model.ListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DeleteTemplate, model.NewDetailView("Delete Genre", detail))
}

// Delete - POST /catalog/genre/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrGenreHasBooks):
		response.Page(c, model.DeleteTemplate, model.NewDetailView("Delete Genre", detail))
	case err == nil, errors.Is(err, model.ErrGenreNotFound):
		response.Redirect(c, model.ListURL)
	default:
		fail(c, err)
	}
}

// UpdateForm - GET /catalog/genre/:id/update
func (h *Handler) UpdateForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrGenreNotFound)
		return
	}

	genre, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView("Update Genre", genre, nil))
}

// Update - POST /catalog/genre/:id/update
// Validation failures and name clashes re-render the form from the stored genre.
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrGenreNotFound)
		return
	}

	var form model.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) == 0 {
		genre, err := h.service.Update(c.Request.Context(), id, in)
		switch {
		case err == nil:
			response.Redirect(c, model.URL(genre.ID))
			return
		case errors.Is(err, model.ErrGenreDuplicate):
			errs = validate.Errors{{Field: "name", Message: "Genre name already exists"}}
		default:
			fail(c, err)
			return
		}
	}

	current, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView("Update Genre", current, errs))
}
