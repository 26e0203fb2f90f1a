package attribute

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bpetkov/modena/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDefinitions)
}

func (handler *Handler) listDefinitions(writer http.ResponseWriter, request *http.Request) {
	definitions, err := handler.service.Definitions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, definitions)
}
