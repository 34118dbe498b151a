package hotel

import "errors"

var (
	// ErrRoomNotOccupied возвращается, когда в номере нет активного проживания
	ErrRoomNotOccupied = errors.New("room not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
