package handler

import (
	"net/http"

	"cabanas/internal/cabins/service"
	httputil "cabanas/pkg/http"
	"cabanas/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type CabinHandler struct {
	service service.CabinService
	log     *logger.Logger
}

func NewCabinHandler(service service.CabinService, log *logger.Logger) *CabinHandler {
	return &CabinHandler{
		service: service,
		log:     log,
	}
}

func (h *CabinHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cabins, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, map[string]any{"cabanas": cabins}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "List", "error", err)
	}
}

func (h *CabinHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cabin, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, cabin); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Get", "error", err)
	}
}

func (h *CabinHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/cabins", h.List)
	router.GET("/api/v1/cabins/:id", h.Get)
}
