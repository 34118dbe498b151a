package checkout

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	checkout "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

// ReceiptResponse HTTP модель чека
type ReceiptResponse struct {
	ID            string `json:"id"`
	RoomNumber    int    `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	GuestName     string `json:"guestName"`
	GuestID       string `json:"guestId"`
	Phone         string `json:"phone"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	Nights        int    `json:"nights"`
	NightlyRate   int64  `json:"nightlyRate"`
	RoomCharge    int64  `json:"roomCharge"`
	ServiceCharge int64  `json:"serviceCharge"`
	Total         int64  `json:"total"`
}

// PaymentResponse реквизиты для оплаты
type PaymentResponse struct {
	AmountDue     int64  `json:"amountDue"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	RoutingCode   string `json:"routingCode"`
	AccountHolder string `json:"accountHolder"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	Receipt ReceiptResponse `json:"receipt"`
	Payment PaymentResponse `json:"payment"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkout.Response) *CheckoutResponse {
	r := resp.Receipt
	return &CheckoutResponse{
		Receipt: fromDomainReceipt(r),
		Payment: PaymentResponse{
			AmountDue:     r.Total,
			BankName:      resp.Payment.BankName,
			AccountNumber: resp.Payment.AccountNumber,
			RoutingCode:   resp.Payment.RoutingCode,
			AccountHolder: resp.Payment.AccountHolder,
		},
	}
}

func fromDomainReceipt(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType.String(),
		GuestName:     r.Guest.Name,
		GuestID:       r.Guest.GuestID,
		Phone:         r.Guest.Phone,
		CheckInDate:   r.CheckInDate.String(),
		CheckOutDate:  r.CheckOutDate.String(),
		Nights:        r.Nights,
		NightlyRate:   r.NightlyRate,
		RoomCharge:    r.RoomCharge,
		ServiceCharge: r.ServiceCharge,
		Total:         r.Total,
	}
}
