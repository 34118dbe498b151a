package get_payment_details

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

type HotelService interface {
	GetPaymentDetails(ctx context.Context) models.PaymentDetailsResponse
}
