package vehicle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bpetkov/modena/internal/platform/request"
	"github.com/bpetkov/modena/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/makes", handler.listMakes)
	router.Get("/makes/{slug}/models", handler.listModels)
	router.Get("/models/{id}/editions", handler.listEditions)
}

func (handler *Handler) listMakes(writer http.ResponseWriter, request *http.Request) {
	makes, err := handler.service.ListMakes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, makes)
}

func (handler *Handler) listModels(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	models, err := handler.service.ModelsByMakeSlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, models)
}

func (handler *Handler) listEditions(writer http.ResponseWriter, request *http.Request) {
	modelID := requestutil.ID(request, "id")

	editions, err := handler.service.EditionsByModel(request.Context(), modelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, editions)
}
