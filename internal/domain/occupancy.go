package domain

import "github.com/m04kA/SMC-HotelService/pkg/types"

// Guest holds the identity fields collected at check-in
type Guest struct {
	Name    string
	GuestID string // national ID or postal address, opaque
	Phone   string
}

// Occupancy represents an active guest stay in a room
type Occupancy struct {
	RoomNumber    int
	RoomType      RoomType
	Guest         Guest
	CheckInDate   types.Date
	ServiceCharge int64 // accrued room service, never decreases while occupied
}

// Clone returns a copy that can be handed out without exposing inventory state
func (o *Occupancy) Clone() *Occupancy {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}
