package add_room_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	addRoomService "github.com/m04kA/SMC-HotelService/internal/usecase/add_room_service"
)

const (
	msgInvalidRoomNumber  = "некорректный номер комнаты"
	msgInvalidRequestBody = "некорректное тело запроса, количество должно быть целым числом"
	msgInvalidItems       = "выберите хотя бы одну позицию, количество от 1 до 1000, сумма счета в пределах лимита"
	msgRoomNotOccupied    = "номер не занят"
)

type Handler struct {
	useCase AddRoomServiceUseCase
	logger  Logger
}

func NewHandler(useCase AddRoomServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomNumber}/room-service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	roomNumber, err := handlers.ParseRoomNumber(r)
	if err != nil {
		h.logger.Warn("[%s] POST /rooms/{room}/room-service - Invalid room number: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	var req RoomServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[%s] POST /rooms/{room}/room-service - Invalid request body: room=%d, error=%v", reqID, roomNumber, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(roomNumber))
	if err != nil {
		switch {
		case errors.Is(err, addRoomService.ErrInvalidInput):
			h.logger.Warn("[%s] POST /rooms/{room}/room-service - Invalid items: room=%d, error=%v", reqID, roomNumber, err)
			handlers.RespondBadRequest(w, msgInvalidItems)

		case errors.Is(err, addRoomService.ErrRoomNotOccupied):
			h.logger.Warn("[%s] POST /rooms/{room}/room-service - Room not occupied: room=%d", reqID, roomNumber)
			handlers.RespondNotFound(w, msgRoomNotOccupied)

		default:
			h.logger.Error("[%s] POST /rooms/{room}/room-service - Failed to add room service: room=%d, error=%v",
				reqID, roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("[%s] POST /rooms/{room}/room-service - Room service added: room=%d, charge=%d, total=%d",
		reqID, roomNumber, result.Charge, result.ServiceTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
