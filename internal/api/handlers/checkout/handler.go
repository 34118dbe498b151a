package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkout "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

const (
	msgInvalidRoomNumber = "некорректный номер комнаты"
	msgRoomNotOccupied   = "номер не занят или уже освобожден"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomNumber}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	roomNumber, err := handlers.ParseRoomNumber(r)
	if err != nil {
		h.logger.Warn("[%s] POST /rooms/{room}/checkout - Invalid room number: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkout.Request{RoomNumber: roomNumber})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidInput):
			h.logger.Warn("[%s] POST /rooms/{room}/checkout - Invalid input: room=%d, error=%v", reqID, roomNumber, err)
			handlers.RespondBadRequest(w, msgInvalidRoomNumber)

		case errors.Is(err, checkout.ErrRoomNotOccupied):
			h.logger.Warn("[%s] POST /rooms/{room}/checkout - Room not occupied: room=%d", reqID, roomNumber)
			handlers.RespondNotFound(w, msgRoomNotOccupied)

		default:
			h.logger.Error("[%s] POST /rooms/{room}/checkout - Failed to check out: room=%d, error=%v", reqID, roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("[%s] POST /rooms/{room}/checkout - Guest checked out: room=%d, total=%d, receipt=%s",
		reqID, roomNumber, result.Receipt.Total, result.Receipt.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
