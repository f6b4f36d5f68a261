package ingredient

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/IvanZabelin/foodgram/internal/platform/request"
	"github.com/IvanZabelin/foodgram/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listIngredients)
	router.Get("/{id}", handler.getIngredient)
}

func (handler *Handler) listIngredients(writer http.ResponseWriter, request *http.Request) {
	namePrefix := request.URL.Query().Get("name")

	ingredients, err := handler.service.ListIngredients(request.Context(), namePrefix)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ingredients)
}

func (handler *Handler) getIngredient(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ing, err := handler.service.GetIngredient(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ing)
}
