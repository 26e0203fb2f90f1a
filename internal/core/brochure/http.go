package brochure

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bpetkov/modena/internal/platform/request"
	"github.com/bpetkov/modena/internal/platform/respond"
	"github.com/bpetkov/modena/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBrochures)
	router.Get("/{id}", handler.getBrochure)
	router.Get("/{id}/resolve", handler.resolveBrochure)
}

// RegisterEditorRoutes mounts the mutating endpoints; the caller wraps them
// in the editor-role guard.
func (handler *Handler) RegisterEditorRoutes(router chi.Router) {
	router.Post("/", handler.createBrochure)
	router.Put("/{id}/selection", handler.updateSelection)
	router.Post("/{id}/lock", handler.lockBrochure)
	router.Post("/{id}/unlock", handler.unlockBrochure)
	router.Delete("/{id}", handler.deleteBrochure)
}

func (handler *Handler) createBrochure(writer http.ResponseWriter, request *http.Request) {
	input := &CreateInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler) listBrochures(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	records, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getBrochure(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) updateSelection(writer http.ResponseWriter, request *http.Request) {
	input := &SelectionInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.UpdateSelection(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) lockBrochure(writer http.ResponseWriter, request *http.Request) {
	var lockedBy *string
	if claims := requestutil.Claims(request); claims != nil {
		lockedBy = &claims.Username
	}

	record, err := handler.service.Lock(request.Context(), requestutil.ID(request, "id"), lockedBy)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) unlockBrochure(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Unlock(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) resolveBrochure(writer http.ResponseWriter, request *http.Request) {
	payload, err := handler.service.Resolve(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Raw(writer, payload)
}

func (handler *Handler) deleteBrochure(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
