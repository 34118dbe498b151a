package add_room_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
)

// UseCase use case для начисления обслуживания номера
type UseCase struct {
	inventory Inventory
	menu      Menu
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inventory Inventory, menu Menu, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		inventory: inventory,
		menu:      menu,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute считает стоимость заказа по меню и добавляет ее к счету номера
// Неизвестные коды меню не считаются ошибкой: они пропускаются и возвращаются в IgnoredItems
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddRoomService: room=%d, items=%v", req.RoomNumber, req.Items)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddRoomService: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем стоимость заказа
	charge, ignored, err := uc.menu.Price(req.Items)
	if err != nil {
		uc.logger.Warn("AddRoomService: room=%d, order rejected: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(ignored) > 0 {
		uc.logger.Warn("AddRoomService: room=%d, ignoring unknown menu items %v", req.RoomNumber, ignored)
	}

	// 3. Начисляем на счет номера
	total, err := uc.inventory.AddServiceCharge(ctx, req.RoomNumber, charge)
	if err != nil {
		if errors.Is(err, inventory.ErrRoomNotOccupied) {
			uc.logger.Warn("AddRoomService: room=%d is not occupied", req.RoomNumber)
			return nil, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, req.RoomNumber)
		}
		if errors.Is(err, inventory.ErrInvalidCharge) {
			uc.logger.Warn("AddRoomService: room=%d, charge %d rejected: %v", req.RoomNumber, charge, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("AddRoomService: failed to add charge to room=%d: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to add service charge: %v", ErrInternal, err)
	}

	uc.metrics.ObserveRoomService(charge, len(ignored))
	uc.logger.Info("AddRoomService: room=%d charged %d, service total %d", req.RoomNumber, charge, total)

	if ignored == nil {
		ignored = []string{}
	}

	return &Response{
		RoomNumber:   req.RoomNumber,
		Charge:       charge,
		ServiceTotal: total,
		IgnoredItems: ignored,
	}, nil
}
