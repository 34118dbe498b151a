package add_room_service

import (
	addRoomService "github.com/m04kA/SMC-HotelService/internal/usecase/add_room_service"
)

// RoomServiceRequest HTTP request model
type RoomServiceRequest struct {
	Items map[string]int `json:"items"` // {"tea": 2, "coffee": 1}
}

// RoomServiceResponse HTTP response model
type RoomServiceResponse struct {
	RoomNumber   int      `json:"roomNumber"`
	Charge       int64    `json:"charge"`
	ServiceTotal int64    `json:"serviceTotal"`
	IgnoredItems []string `json:"ignoredItems"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RoomServiceRequest) ToUseCaseRequest(roomNumber int) *addRoomService.Request {
	return &addRoomService.Request{
		RoomNumber: roomNumber,
		Items:      r.Items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addRoomService.Response) *RoomServiceResponse {
	return &RoomServiceResponse{
		RoomNumber:   resp.RoomNumber,
		Charge:       resp.Charge,
		ServiceTotal: resp.ServiceTotal,
		IgnoredItems: resp.IgnoredItems,
	}
}
