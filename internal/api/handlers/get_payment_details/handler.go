package get_payment_details

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service HotelService
}

func NewHandler(service HotelService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/payment-details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetPaymentDetails(r.Context()))
}
