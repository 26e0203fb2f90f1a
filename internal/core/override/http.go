package override

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
	router.Get("/{level}/{entityID}", handler.readOverrides)
	router.Put("/{level}/{entityID}", handler.replaceOverrides)
}

func (handler *Handler) readOverrides(writer http.ResponseWriter, request *http.Request) {
	level := requestutil.Param(request, "level")
	entityID := requestutil.ID(request, "entityID")

	set, err := handler.service.Read(request.Context(), level, entityID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, setResponse(set))
}

func (handler *Handler) replaceOverrides(writer http.ResponseWriter, request *http.Request) {
	level := requestutil.Param(request, "level")
	entityID := requestutil.ID(request, "entityID")

	payload := &ReplacePayload{}
	if err := requestutil.DecodeJSON(request, payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Replace(request.Context(), level, entityID, payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// setView is the JSON projection of a stored override set.
type setView struct {
	Numeric     map[string]float64           `json:"numeric"`
	Boolean     map[string]bool              `json:"boolean"`
	Sidecar     map[string]sidecarView       `json:"json"`
	SidecarI18n map[string]map[string]string `json:"json_i18n"`
	Enums       map[string]string            `json:"enums"`
}

type sidecarView struct {
	V  string  `json:"v"`
	Dt string  `json:"dt"`
	U  *string `json:"u"`
}

func setResponse(set *Set) setView {
	view := setView{
		Numeric:     set.Numeric,
		Boolean:     set.Boolean,
		Sidecar:     make(map[string]sidecarView, len(set.Sidecar)),
		SidecarI18n: set.SidecarI18n,
		Enums:       set.Enums,
	}
	for code, row := range set.Sidecar {
		view.Sidecar[code] = sidecarView{V: row.Value, Dt: row.DataType, U: row.Unit}
	}
	return view
}
