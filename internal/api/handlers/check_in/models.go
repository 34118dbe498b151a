package check_in

import (
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CheckInRequest HTTP request model
type CheckInRequest struct {
	GuestName   string `json:"guestName"`
	GuestID     string `json:"guestId"`     // документ или адрес
	Phone       string `json:"phone"`       // только цифры
	RoomType    string `json:"roomType"`    // "standard"
	CheckInDate string `json:"checkInDate"` // "2025-10-15"
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	RoomNumber  int    `json:"roomNumber"`
	RoomType    string `json:"roomType"`
	GuestName   string `json:"guestName"`
	CheckInDate string `json:"checkInDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckInRequest) ToUseCaseRequest() (*checkIn.Request, error) {
	date, err := types.NewDateFromString(r.CheckInDate)
	if err != nil {
		return nil, err
	}

	return &checkIn.Request{
		GuestName:   r.GuestName,
		GuestID:     r.GuestID,
		Phone:       r.Phone,
		RoomType:    r.RoomType,
		CheckInDate: date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkIn.Response) *CheckInResponse {
	return &CheckInResponse{
		RoomNumber:  resp.RoomNumber,
		RoomType:    resp.RoomType.String(),
		GuestName:   resp.GuestName,
		CheckInDate: resp.CheckInDate.String(),
	}
}
