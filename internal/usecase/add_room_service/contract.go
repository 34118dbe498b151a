package add_room_service

import "context"

// Inventory интерфейс номерного фонда
type Inventory interface {
	AddServiceCharge(ctx context.Context, room int, amount int64) (int64, error)
}

// Menu интерфейс каталога обслуживания номеров
type Menu interface {
	Price(selection map[string]int) (int64, []string, error)
}

// Metrics интерфейс для метрик обслуживания номеров
type Metrics interface {
	ObserveRoomService(charge int64, ignoredItems int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
