package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanZabelin/foodgram/internal/platform/middleware"
	requestutil "github.com/IvanZabelin/foodgram/internal/platform/request"
	"github.com/IvanZabelin/foodgram/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cart endpoints under the recipes prefix.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/download_shopping_cart", handler.downloadShoppingCart)
		authed.Post("/{id}/shopping_cart", handler.addToCart)
		authed.Delete("/{id}/shopping_cart", handler.removeFromCart)
	})
}

func (handler *Handler) addToCart(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	recipeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.AddRecipe(request.Context(), userID, recipeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) removeFromCart(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	recipeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveRecipe(request.Context(), userID, recipeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) downloadShoppingCart(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body, err := handler.service.ShoppingList(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Attachment(writer, "shopping_list.txt", "text/plain; charset=utf-8", body)
}
