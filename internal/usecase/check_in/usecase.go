package check_in

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
)

// UseCase use case для заселения гостя
type UseCase struct {
	inventory Inventory
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inventory Inventory, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		inventory: inventory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case заселения
// Выдает первый свободный номер запрошенного типа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: guest=%q, room_type=%s, date=%s", req.GuestName, req.RoomType, req.CheckInDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckIn: validation failed: %v", err)
		uc.metrics.ObserveCheckInRejected("invalid_input")
		return nil, err
	}

	// 2. Проверяем, что тип номера существует
	roomType := domain.NormalizeRoomType(req.RoomType)
	if !uc.inventory.HasRoomType(roomType) {
		uc.logger.Warn("CheckIn: unknown room type=%s", roomType)
		uc.metrics.ObserveCheckInRejected("invalid_room_type")
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoomType, roomType)
	}

	guest := domain.Guest{
		Name:    strings.TrimSpace(req.GuestName),
		GuestID: strings.TrimSpace(req.GuestID),
		Phone:   strings.TrimSpace(req.Phone),
	}

	// 3. Выдаем номер
	occ, err := uc.inventory.Allocate(ctx, roomType, guest, req.CheckInDate)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNoRoomAvailable):
			uc.logger.Warn("CheckIn: no %s rooms available", roomType)
			uc.metrics.ObserveCheckInRejected("no_room_available")
			return nil, fmt.Errorf("%w: %s", ErrNoRoomAvailable, roomType)
		case errors.Is(err, inventory.ErrUnknownRoomType):
			uc.metrics.ObserveCheckInRejected("invalid_room_type")
			return nil, fmt.Errorf("%w: %s", ErrInvalidRoomType, roomType)
		default:
			uc.logger.Error("CheckIn: failed to allocate %s room: %v", roomType, err)
			return nil, fmt.Errorf("%w: failed to allocate room: %v", ErrInternal, err)
		}
	}

	uc.metrics.ObserveCheckIn(roomType.String())
	uc.logger.Info("CheckIn: guest=%q checked in to room=%d (%s)", guest.Name, occ.RoomNumber, roomType)

	return &Response{
		RoomNumber:  occ.RoomNumber,
		RoomType:    occ.RoomType,
		GuestName:   occ.Guest.Name,
		CheckInDate: occ.CheckInDate,
	}, nil
}
