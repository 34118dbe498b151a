package add_room_service

import (
	"context"

	addRoomService "github.com/m04kA/SMC-HotelService/internal/usecase/add_room_service"
)

type AddRoomServiceUseCase interface {
	Execute(ctx context.Context, req *addRoomService.Request) (*addRoomService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
