package list_occupied

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/occupied
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	rooms, err := h.service.ListOccupied(r.Context())
	if err != nil {
		h.logger.Error("[%s] GET /rooms/occupied - Failed to list occupied rooms: %v", reqID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("[%s] GET /rooms/occupied - Returned %d rooms", reqID, len(rooms.Rooms))
	handlers.RespondJSON(w, http.StatusOK, rooms)
}
