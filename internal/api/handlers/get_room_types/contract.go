package get_room_types

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

type HotelService interface {
	GetRoomTypes(ctx context.Context) ([]models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
