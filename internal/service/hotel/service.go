package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-HotelService/internal/service/hotel/models"
)

// Service сервис для чтения состояния гостиницы
type Service struct {
	inventory Inventory
	menu      Menu
	payment   domain.PaymentDetails
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	inventory Inventory,
	menu Menu,
	payment domain.PaymentDetails,
	logger Logger,
) *Service {
	return &Service{
		inventory: inventory,
		menu:      menu,
		payment:   payment,
		logger:    logger,
	}
}

// ListOccupied возвращает занятые номера, отсортированные по номеру комнаты
func (s *Service) ListOccupied(ctx context.Context) (*models.OccupiedRoomListResponse, error) {
	s.logger.Info("ListOccupied: fetching occupied rooms")

	list, err := s.inventory.ListOccupied(ctx)
	if err != nil {
		s.logger.Error("ListOccupied: inventory error: %v", err)
		return nil, fmt.Errorf("%w: ListOccupied - inventory error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOccupied: %d rooms occupied", len(list))
	return models.FromDomainOccupancyList(list), nil
}

// GetOccupiedRoom возвращает проживание в конкретном номере
func (s *Service) GetOccupiedRoom(ctx context.Context, room int) (*models.OccupiedRoomResponse, error) {
	s.logger.Info("GetOccupiedRoom: fetching room=%d", room)

	if room <= 0 {
		return nil, fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}

	occ, err := s.inventory.GetByRoom(ctx, room)
	if err != nil {
		if errors.Is(err, inventory.ErrRoomNotOccupied) {
			s.logger.Warn("GetOccupiedRoom: room=%d is not occupied", room)
			return nil, ErrRoomNotOccupied
		}
		s.logger.Error("GetOccupiedRoom: inventory error for room=%d: %v", room, err)
		return nil, fmt.Errorf("%w: GetOccupiedRoom - inventory error: %v", ErrInternal, err)
	}

	return models.FromDomainOccupancy(occ), nil
}

// GetRoomTypes возвращает тарифы и доступность по типам номеров
func (s *Service) GetRoomTypes(ctx context.Context) ([]models.RoomTypeResponse, error) {
	avail, err := s.inventory.Availability(ctx)
	if err != nil {
		s.logger.Error("GetRoomTypes: inventory error: %v", err)
		return nil, fmt.Errorf("%w: GetRoomTypes - inventory error: %v", ErrInternal, err)
	}

	resp := make([]models.RoomTypeResponse, 0, len(avail))
	for _, a := range avail {
		resp = append(resp, models.FromDomainAvailability(a))
	}
	return resp, nil
}

// GetMenu возвращает меню обслуживания номеров
func (s *Service) GetMenu(_ context.Context) []models.MenuItemResponse {
	items := s.menu.Items()
	resp := make([]models.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, models.FromDomainMenuItem(item))
	}
	return resp
}

// GetPaymentDetails возвращает реквизиты для оплаты (только для отображения)
func (s *Service) GetPaymentDetails(_ context.Context) models.PaymentDetailsResponse {
	return models.FromDomainPaymentDetails(s.payment)
}
