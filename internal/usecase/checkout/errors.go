package checkout

import "errors"

var (
	// ErrRoomNotOccupied возвращается, когда в номере нет активного проживания
	ErrRoomNotOccupied = errors.New("checkout: room not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
