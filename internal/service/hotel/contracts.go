package hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Inventory интерфейс номерного фонда (только чтение)
type Inventory interface {
	ListOccupied(ctx context.Context) ([]*domain.Occupancy, error)
	GetByRoom(ctx context.Context, room int) (*domain.Occupancy, error)
	Availability(ctx context.Context) ([]domain.RoomTypeAvailability, error)
}

// Menu интерфейс каталога обслуживания номеров
type Menu interface {
	Items() []domain.MenuItem
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
