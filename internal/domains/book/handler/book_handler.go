package handler

import (
	"errors"

	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/book/service"
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
	catalog.GET("/books", h.List)
	catalog.GET("/book/create", h.CreateForm)
	catalog.POST("/book/create", h.Create)
	catalog.GET("/book/:id", h.Detail)
	catalog.GET("/book/:id/delete", h.DeleteForm)
	catalog.POST("/book/:id/delete", h.Delete)
	catalog.GET("/book/:id/update", h.UpdateForm)
	catalog.POST("/book/:id/update", h.Update)
}

func fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrBookNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalServerError(c, err)
}

// renderForm loads the author and genre choices and renders book_form.html.
func (h *Handler) renderForm(c *gin.Context, title string, book *model.Book, errs validate.Errors) {
	authors, genres, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView(title, book, authors, genres, errs))
}

// renderUpdateForm re-renders against the stored book, never the submitted one.
func (h *Handler) renderUpdateForm(c *gin.Context, id uuid.UUID, errs validate.Errors) {
	data, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.FormTemplate, model.NewFormView("Update Book", data.Book, data.Authors, data.Genres, errs))
}

func detailView(title string, d *model.Detail) model.DetailView {
	return model.DetailView{Title: title, URL: model.URL(d.Book.ID), Detail: *d}
}

// List - GET /catalog/books
func (h *Handler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.ListTemplate, model.NewListView("Book List", books))
}

// Detail - GET /catalog/book/:id
func (h *Handler) Detail(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DetailTemplate, detailView("Book Detail", detail))
}

// CreateForm - GET /catalog/book/create
func (h *Handler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Create Book", nil, nil)
}

// Create - POST /catalog/book/create
func (h *Handler) Create(c *gin.Context) {
	var form model.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		h.renderForm(c, "Create Book", in.ToEntity(uuid.Nil), errs)
		return
	}

	book, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(book.ID))
}

// DeleteForm - GET /catalog/book/:id/delete
func (h *Handler) DeleteForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if errors.Is(err, model.ErrBookNotFound) {
		response.Redirect(c, model.ListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Page(c, model.DeleteTemplate, detailView("Delete Book", detail))
}

// Delete - POST /catalog/book/:id/delete
func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		response.Redirect(c, model.ListURL)
		return
	}

	detail, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, model.ErrBookHasInstances):
		response.Page(c, model.DeleteTemplate, detailView("Delete Book", detail))
	case err == nil, errors.Is(err, model.ErrBookNotFound):
		response.Redirect(c, model.ListURL)
	default:
		fail(c, err)
	}
}

// UpdateForm - GET /catalog/book/:id/update
func (h *Handler) UpdateForm(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookNotFound)
		return
	}

	h.renderUpdateForm(c, id, nil)
}

// Update - POST /catalog/book/:id/update
func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.PathID(c)
	if !ok {
		fail(c, model.ErrBookNotFound)
		return
	}

	var form model.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err)
		return
	}

	in, errs := form.Validate()
	if len(errs) > 0 {
		h.renderUpdateForm(c, id, errs)
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, model.URL(book.ID))
}
