package domain

import "strings"

// RoomType represents a room category (standard, deluxe, ...)
type RoomType string

const (
	RoomTypeStandard  RoomType = "standard"
	RoomTypeDeluxe    RoomType = "deluxe"
	RoomTypeExecutive RoomType = "executive"
	RoomTypeSuite     RoomType = "suite"
)

// NormalizeRoomType lower-cases and trims a room type received from a client
func NormalizeRoomType(s string) RoomType {
	return RoomType(strings.ToLower(strings.TrimSpace(s)))
}

func (t RoomType) String() string {
	return string(t)
}

// RoomTypeConfig describes a configured room category
// Rooms is the initial pool in assignment order
type RoomTypeConfig struct {
	Type        RoomType
	NightlyRate int64
	Rooms       []int
}

// RoomTypeAvailability is a snapshot of one room type's pool
type RoomTypeAvailability struct {
	Type           RoomType
	NightlyRate    int64
	AvailableRooms []int // in assignment order
	OccupiedCount  int
}

// AvailableCount returns the number of rooms that can be assigned right now
func (a *RoomTypeAvailability) AvailableCount() int {
	return len(a.AvailableRooms)
}

// IsSoldOut returns true if no room of this type can be assigned
func (a *RoomTypeAvailability) IsSoldOut() bool {
	return len(a.AvailableRooms) == 0
}

// TotalRooms returns the number of rooms of this type in the hotel
func (a *RoomTypeAvailability) TotalRooms() int {
	return len(a.AvailableRooms) + a.OccupiedCount
}
