package resolution

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bpetkov/modena/internal/platform/request"
	"github.com/bpetkov/modena/internal/platform/respond"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}/attributes", handler.effectiveAttributes)
}

func (handler *Handler) effectiveAttributes(writer http.ResponseWriter, request *http.Request) {
	editionID := requestutil.ID(request, "id")
	lang := requestutil.Lang(request)

	resolution, err := handler.engine.Resolve(request.Context(), editionID, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resolution)
}
