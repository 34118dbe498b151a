package get_room_types

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

// Handle GET /api/v1/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	roomTypes, err := h.service.GetRoomTypes(r.Context())
	if err != nil {
		h.logger.Error("[%s] GET /room-types - Failed to get room types: %v", reqID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, roomTypes)
}
