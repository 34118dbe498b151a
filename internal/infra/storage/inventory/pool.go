package inventory

import "github.com/m04kA/SMC-HotelService/internal/domain"

// pool очередь свободных номеров одного типа
// Номер выдается из головы, возвращается в хвост
type pool struct {
	roomType    domain.RoomType
	nightlyRate int64
	rooms       []int
	occupied    int
}

func (p *pool) take() (int, bool) {
	if len(p.rooms) == 0 {
		return 0, false
	}
	room := p.rooms[0]
	p.rooms = p.rooms[1:]
	p.occupied++
	return room, true
}

func (p *pool) giveBack(room int) {
	p.rooms = append(p.rooms, room)
	p.occupied--
}

func (p *pool) snapshot() domain.RoomTypeAvailability {
	rooms := make([]int, len(p.rooms))
	copy(rooms, p.rooms)
	return domain.RoomTypeAvailability{
		Type:           p.roomType,
		NightlyRate:    p.nightlyRate,
		AvailableRooms: rooms,
		OccupiedCount:  p.occupied,
	}
}
