package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanZabelin/foodgram/internal/platform/middleware"
	requestutil "github.com/IvanZabelin/foodgram/internal/platform/request"
	"github.com/IvanZabelin/foodgram/internal/platform/respond"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listTags)
	router.Get("/{id}", handler.getTag)

	// Admin only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/", handler.createTag)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.GetTag(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input CreateTagInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	tag, err := handler.service.CreateTag(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}
