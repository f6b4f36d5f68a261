package recipe

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/IvanZabelin/foodgram/internal/platform/middleware"
	requestutil "github.com/IvanZabelin/foodgram/internal/platform/request"
	"github.com/IvanZabelin/foodgram/internal/platform/respond"
	"github.com/IvanZabelin/foodgram/internal/platform/validate"
	"github.com/IvanZabelin/foodgram/pkg/pagination"
)

type Handler struct {
	service *Service
	baseURL string
}

// NewHandler wires the recipe endpoints. baseURL is the public origin used
// when minting absolute short links.
func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listRecipes)
	router.Get("/{id}", handler.getRecipe)
	router.Get("/{id}/get-link", handler.getShortLink)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/", handler.createRecipe)
		authed.Patch("/{id}", handler.updateRecipe)
		authed.Delete("/{id}", handler.deleteRecipe)
	})
}

// RedirectShort serves the short link target. Mounted at /s/{id} by the
// server, outside the API prefix.
func (handler *Handler) RedirectShort(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.GetRecipe(request.Context(), id, viewerID(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, "/recipes/"+strconv.FormatInt(id, 10), http.StatusFound)
}

func (handler *Handler) listRecipes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		TagSlugs:      queryParams["tags"],
		OnlyFavorited: queryParams.Get("is_favorited") == "1",
		OnlyInCart:    queryParams.Get("is_in_shopping_cart") == "1",
	}
	if author := queryParams.Get("author"); author != "" {
		authorID, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("author", "Author must be a numeric id"))
			return
		}
		filter.AuthorID = authorID
	}

	recipes, total, err := handler.service.ListRecipes(
		request.Context(), filter, viewerID(request),
		paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, recipes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getRecipe(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recipe, err := handler.service.GetRecipe(request.Context(), id, viewerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, recipe)
}

func (handler *Handler) getShortLink(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := handler.service.ShortLinkPath(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"short-link": handler.baseURL + path})
}

func (handler *Handler) createRecipe(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	recipe, err := handler.service.CreateRecipe(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, recipe)
}

func (handler *Handler) updateRecipe(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	recipe, err := handler.service.UpdateRecipe(request.Context(), claims, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, recipe)
}

func (handler *Handler) deleteRecipe(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRecipe(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// viewerID extracts the authenticated user id, zero for anonymous.
func viewerID(request *http.Request) int64 {
	if claims := requestutil.Claims(request); claims != nil {
		return claims.UserID
	}
	return 0
}
