package get_occupied_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/hotel"
)

const (
	msgInvalidRoomNumber = "некорректный номер комнаты"
	msgRoomNotOccupied   = "номер не занят"
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

// Handle GET /api/v1/rooms/{roomNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	roomNumber, err := handlers.ParseRoomNumber(r)
	if err != nil {
		h.logger.Warn("[%s] GET /rooms/{room} - Invalid room number: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	room, err := h.service.GetOccupiedRoom(r.Context(), roomNumber)
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoomNumber)

		case errors.Is(err, hotel.ErrRoomNotOccupied):
			h.logger.Warn("[%s] GET /rooms/{room} - Room not occupied: room=%d", reqID, roomNumber)
			handlers.RespondNotFound(w, msgRoomNotOccupied)

		default:
			h.logger.Error("[%s] GET /rooms/{room} - Failed to get room: room=%d, error=%v", reqID, roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}
