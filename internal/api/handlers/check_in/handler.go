package check_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты заселения, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные гостя: имя обязательно, телефон только цифры"
	msgInvalidRoomType    = "неизвестный тип номера"
	msgNoRoomAvailable    = "нет свободных номеров выбранного типа"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/check-ins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := handlers.RequestID(r)

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[%s] POST /check-ins - Invalid request body: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("[%s] POST /check-ins - Failed to parse check-in date %q: %v", reqID, req.CheckInDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrInvalidInput):
			h.logger.Warn("[%s] POST /check-ins - Invalid input: %v", reqID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkIn.ErrInvalidRoomType):
			h.logger.Warn("[%s] POST /check-ins - Invalid room type: room_type=%q", reqID, req.RoomType)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, checkIn.ErrNoRoomAvailable):
			h.logger.Warn("[%s] POST /check-ins - No room available: room_type=%q", reqID, req.RoomType)
			handlers.RespondConflict(w, msgNoRoomAvailable)

		default:
			h.logger.Error("[%s] POST /check-ins - Failed to check in: room_type=%q, error=%v", reqID, req.RoomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("[%s] POST /check-ins - Guest checked in: room=%d, room_type=%s", reqID, result.RoomNumber, result.RoomType)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
