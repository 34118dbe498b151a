package list_occupied

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

type HotelService interface {
	ListOccupied(ctx context.Context) (*models.OccupiedRoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
