package compare

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
	router.Post("/", handler.compare)
}

func (handler *Handler) compare(writer http.ResponseWriter, request *http.Request) {
	body := &Request{}
	if err := requestutil.DecodeJSON(request, body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.engine.Compare(request.Context(), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
