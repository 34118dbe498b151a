package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Repository номерной фонд гостиницы в памяти процесса
// Владеет пулами свободных номеров и картой активных проживаний.
// Каждая операция выполняется целиком под одним мьютексом, поэтому
// промежуточное состояние (номер изъят из пула, но проживания нет) не наблюдаемо.
type Repository struct {
	mu       sync.Mutex
	pools    map[domain.RoomType]*pool
	order    []domain.RoomType
	occupied map[int]*domain.Occupancy
}

// NewRepository создает номерной фонд по конфигурации типов номеров
// Проверяет, что каждый номер встречается ровно в одном пуле
func NewRepository(roomTypes []domain.RoomTypeConfig) (*Repository, error) {
	r := &Repository{
		pools:    make(map[domain.RoomType]*pool, len(roomTypes)),
		order:    make([]domain.RoomType, 0, len(roomTypes)),
		occupied: make(map[int]*domain.Occupancy),
	}

	seen := make(map[int]domain.RoomType)
	for _, rt := range roomTypes {
		if rt.Type == "" {
			return nil, fmt.Errorf("%w: empty room type name", ErrInvalidLayout)
		}
		if _, dup := r.pools[rt.Type]; dup {
			return nil, fmt.Errorf("%w: room type %s declared twice", ErrInvalidLayout, rt.Type)
		}
		if rt.NightlyRate <= 0 || rt.NightlyRate > domain.MaxNightlyRate {
			return nil, fmt.Errorf("%w: room type %s has rate %d outside 1..%d",
				ErrInvalidLayout, rt.Type, rt.NightlyRate, domain.MaxNightlyRate)
		}

		rooms := make([]int, 0, len(rt.Rooms))
		for _, room := range rt.Rooms {
			if room <= 0 {
				return nil, fmt.Errorf("%w: room number %d must be positive", ErrInvalidLayout, room)
			}
			if other, dup := seen[room]; dup {
				return nil, fmt.Errorf("%w: room %d listed in %s and %s", ErrInvalidLayout, room, other, rt.Type)
			}
			seen[room] = rt.Type
			rooms = append(rooms, room)
		}

		r.pools[rt.Type] = &pool{roomType: rt.Type, nightlyRate: rt.NightlyRate, rooms: rooms}
		r.order = append(r.order, rt.Type)
	}

	if len(r.order) == 0 {
		return nil, fmt.Errorf("%w: no room types configured", ErrInvalidLayout)
	}

	return r, nil
}

// HasRoomType сообщает, сконфигурирован ли тип номера
func (r *Repository) HasRoomType(roomType domain.RoomType) bool {
	_, ok := r.pools[roomType]
	return ok
}

// Allocate выдает первый свободный номер указанного типа и создает проживание
// со счетом за обслуживание 0. При пустом пуле состояние не меняется.
func (r *Repository) Allocate(ctx context.Context, roomType domain.RoomType, guest domain.Guest, checkIn types.Date) (*domain.Occupancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pools[roomType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoomType, roomType)
	}

	room, ok := p.take()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRoomAvailable, roomType)
	}

	occ := &domain.Occupancy{
		RoomNumber:  room,
		RoomType:    roomType,
		Guest:       guest,
		CheckInDate: checkIn,
	}
	r.occupied[room] = occ

	return occ.Clone(), nil
}

// AddServiceCharge начисляет сумму на счет обслуживания номера
// Возвращает новый накопленный итог
func (r *Repository) AddServiceCharge(ctx context.Context, room int, amount int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCharge, amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	occ, ok := r.occupied[room]
	if !ok {
		return 0, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, room)
	}

	if amount > domain.MaxServiceCharge-occ.ServiceCharge {
		return 0, fmt.Errorf("%w: room %d total would exceed %d", ErrInvalidCharge, room, domain.MaxServiceCharge)
	}

	occ.ServiceCharge += amount
	return occ.ServiceCharge, nil
}

// GetByRoom получает копию активного проживания
func (r *Repository) GetByRoom(ctx context.Context, room int) (*domain.Occupancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	occ, ok := r.occupied[room]
	if !ok {
		return nil, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, room)
	}
	return occ.Clone(), nil
}

// ListOccupied возвращает снимок активных проживаний, отсортированный по номеру комнаты
func (r *Repository) ListOccupied(ctx context.Context) ([]*domain.Occupancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Occupancy, 0, len(r.occupied))
	for _, occ := range r.occupied {
		result = append(result, occ.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RoomNumber < result[j].RoomNumber })

	return result, nil
}

// Release завершает проживание: удаляет его и возвращает номер в хвост пула.
// Возвращает копию удаленного проживания и тариф за ночь для расчета счета.
func (r *Repository) Release(ctx context.Context, room int) (*domain.Occupancy, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	occ, ok := r.occupied[room]
	if !ok {
		return nil, 0, fmt.Errorf("%w: room %d", ErrRoomNotOccupied, room)
	}

	p := r.pools[occ.RoomType]
	p.giveBack(room)
	delete(r.occupied, room)

	return occ, p.nightlyRate, nil
}

// Availability возвращает состояние пулов в порядке объявления типов в конфигурации
func (r *Repository) Availability(ctx context.Context) ([]domain.RoomTypeAvailability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.RoomTypeAvailability, 0, len(r.order))
	for _, rt := range r.order {
		result = append(result, r.pools[rt].snapshot())
	}
	return result, nil
}
