package check_in

import "errors"

var (
	// ErrNoRoomAvailable возвращается, когда свободных номеров запрошенного типа нет
	ErrNoRoomAvailable = errors.New("check_in: no room available")

	// ErrInvalidRoomType возвращается для типа номера, которого нет в конфигурации
	ErrInvalidRoomType = errors.New("check_in: invalid room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
