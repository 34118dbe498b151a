package check_in

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Inventory интерфейс номерного фонда
type Inventory interface {
	HasRoomType(roomType domain.RoomType) bool
	Allocate(ctx context.Context, roomType domain.RoomType, guest domain.Guest, checkIn types.Date) (*domain.Occupancy, error)
}

// Metrics интерфейс для метрик заселения
type Metrics interface {
	ObserveCheckIn(roomType string)
	ObserveCheckInRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
