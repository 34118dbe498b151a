package add_room_service

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomNumber <= 0 {
		return fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}

	// Нужна хотя бы одна позиция
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: select at least one item", ErrInvalidInput)
	}

	for code, qty := range req.Items {
		if qty < 1 || qty > domain.MaxItemQuantity {
			return fmt.Errorf("%w: quantity for %q must be in 1..%d", ErrInvalidInput, code, domain.MaxItemQuantity)
		}
	}

	return nil
}
