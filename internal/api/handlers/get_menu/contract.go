package get_menu

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

type HotelService interface {
	GetMenu(ctx context.Context) []models.MenuItemResponse
}
