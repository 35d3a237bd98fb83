package handler

import (
	"encoding/json"
	"net/http"

	"cabanas/internal/reservations/service"
	apperrors "cabanas/pkg/errors"
	httputil "cabanas/pkg/http"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CreateResponse struct {
	Message     string             `json:"message"`
	Reservation *model.Reservation `json:"reservation"`
	EmailSent   bool               `json:"email_sent"`
}

// ListResponse keeps the legacy "reservas" key the original web client
// depends on.
type ListResponse struct {
	Reservations []model.Reservation `json:"reservas"`
}

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(service service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reservation model.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("request body must be valid JSON"))
		return
	}

	result, err := h.service.Create(r.Context(), &reservation)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	response := CreateResponse{
		Message:     "Reservation confirmed",
		Reservation: result.Reservation,
		EmailSent:   result.EmailSent,
	}
	if err := httputil.WriteCreated(w, response); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "error", err)
	}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reservations, err := h.service.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, ListResponse{Reservations: reservations}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "List", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/reservations", h.Create)
	router.GET("/api/v1/reservations", h.List)
}
