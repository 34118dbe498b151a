package get_occupied_room

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

type HotelService interface {
	GetOccupiedRoom(ctx context.Context, room int) (*models.OccupiedRoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
