package add_room_service

import "errors"

var (
	// ErrRoomNotOccupied возвращается, когда в номере нет активного проживания
	ErrRoomNotOccupied = errors.New("add_room_service: room not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_room_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_room_service: internal error")
)
