package add_room_service

// Request модель запроса на обслуживание номера
type Request struct {
	RoomNumber int            // Номер комнаты
	Items      map[string]int // Код позиции меню -> количество
}

// Response модель ответа с обновленным счетом
type Response struct {
	RoomNumber   int
	Charge       int64    // Сумма этого заказа
	ServiceTotal int64    // Накопленный счет за обслуживание
	IgnoredItems []string // Коды, которых нет в меню
}
