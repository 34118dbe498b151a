package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// UseCase use case для выселения гостя и расчета счета
type UseCase struct {
	inventory    Inventory
	payment      domain.PaymentDetails
	metrics      Metrics
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inventory Inventory,
	payment domain.PaymentDetails,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventory:    inventory,
		payment:      payment,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		idGenerator:  UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет выселение
// Номер возвращается в конец пула своего типа, проживание удаляется.
// Повторное выселение того же номера завершится ErrRoomNotOccupied.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: room=%d", req.RoomNumber)

	// 1. Валидация входных данных
	if req.RoomNumber <= 0 {
		uc.logger.Warn("Checkout: invalid room number=%d", req.RoomNumber)
		return nil, fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}

	// 2. Дата выселения - сегодня
	checkOutDate := types.DateOf(uc.timeProvider.Now())

	// 3. Освобождаем номер
	occ, nightlyRate, err := uc.inventory.Release(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, inventory.ErrRoomNotOccupied) {
			uc.logger.Warn("Checkout: room=%d is not occupied", req.RoomNumber)
			return nil, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, req.RoomNumber)
		}
		uc.logger.Error("Checkout: failed to release room=%d: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to release room: %v", ErrInternal, err)
	}

	// 4. Считаем счет
	if checkOutDate.Before(occ.CheckInDate) {
		uc.logger.Warn("Checkout: room=%d check-in date %s is after checkout %s, billing %d night",
			req.RoomNumber, occ.CheckInDate, checkOutDate, domain.MinStayNights)
	}
	receipt := domain.Settle(uc.idGenerator.NewID(), occ, nightlyRate, checkOutDate)

	uc.metrics.ObserveCheckOut(receipt.RoomType.String(), receipt.RoomCharge)
	uc.logger.Info("Checkout: room=%d guest=%q nights=%d room_bill=%d service_bill=%d total=%d receipt=%s",
		receipt.RoomNumber, receipt.Guest.Name, receipt.Nights, receipt.RoomCharge,
		receipt.ServiceCharge, receipt.Total, receipt.ID)

	return &Response{
		Receipt: receipt,
		Payment: uc.payment,
	}, nil
}
