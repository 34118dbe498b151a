package inventory

import "errors"

var (
	// ErrNoRoomAvailable возвращается, когда в пуле типа номера не осталось свободных номеров
	ErrNoRoomAvailable = errors.New("inventory: no room available")

	// ErrUnknownRoomType возвращается для типа номера, которого нет в конфигурации
	ErrUnknownRoomType = errors.New("inventory: unknown room type")

	// ErrRoomNotOccupied возвращается, когда в номере нет активного проживания
	ErrRoomNotOccupied = errors.New("inventory: room not occupied")

	// ErrInvalidLayout возвращается при некорректной конфигурации номерного фонда
	ErrInvalidLayout = errors.New("inventory: invalid room layout")

	// ErrInvalidCharge возвращается при попытке начислить отрицательную сумму
	// или превысить предел накопленного счета
	ErrInvalidCharge = errors.New("inventory: invalid charge")
)
