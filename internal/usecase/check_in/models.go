package check_in

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request модель запроса на заселение
type Request struct {
	GuestName   string     // Имя гостя
	GuestID     string     // Документ или адрес гостя
	Phone       string     // Телефон, только цифры
	RoomType    string     // Тип номера (standard, deluxe, ...)
	CheckInDate types.Date // Дата заселения, может быть в прошлом или будущем
}

// Response модель ответа с выданным номером
type Response struct {
	RoomNumber  int
	RoomType    domain.RoomType
	GuestName   string
	CheckInDate types.Date
}
