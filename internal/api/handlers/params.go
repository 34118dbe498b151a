package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
)

// ErrInvalidRoomNumber возвращается, если номер комнаты в пути не положительное целое
var ErrInvalidRoomNumber = errors.New("room number must be a positive integer")

// RoomNumberVar имя переменной пути с номером комнаты
const RoomNumberVar = "roomNumber"

// ParseRoomNumber извлекает номер комнаты из пути запроса
func ParseRoomNumber(r *http.Request) (int, error) {
	raw := mux.Vars(r)[RoomNumberVar]

	room, err := strconv.Atoi(raw)
	if err != nil || room <= 0 {
		return 0, ErrInvalidRoomNumber
	}
	return room, nil
}

// RequestID возвращает идентификатор запроса для логов или "-", если его нет
func RequestID(r *http.Request) string {
	if id, ok := middleware.GetRequestID(r.Context()); ok {
		return id
	}
	return "-"
}
