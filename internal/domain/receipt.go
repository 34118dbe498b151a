package domain

import "github.com/m04kA/SMC-HotelService/pkg/types"

// Receipt is the immutable settlement summary produced at checkout
type Receipt struct {
	ID            string
	RoomNumber    int
	RoomType      RoomType
	Guest         Guest
	CheckInDate   types.Date
	CheckOutDate  types.Date
	Nights        int
	NightlyRate   int64
	RoomCharge    int64
	ServiceCharge int64
	Total         int64
}

// StayNights returns the number of billable nights between check-in and check-out.
// A same-day checkout, or a check-in date in the future, still bills MinStayNights.
func StayNights(checkIn, checkOut types.Date) int {
	nights := checkIn.DaysUntil(checkOut)
	if nights < MinStayNights {
		return MinStayNights
	}
	return nights
}

// Settle builds the receipt for an occupancy checked out on checkOut
func Settle(id string, occ *Occupancy, nightlyRate int64, checkOut types.Date) *Receipt {
	nights := StayNights(occ.CheckInDate, checkOut)
	roomCharge := nightlyRate * int64(nights)

	return &Receipt{
		ID:            id,
		RoomNumber:    occ.RoomNumber,
		RoomType:      occ.RoomType,
		Guest:         occ.Guest,
		CheckInDate:   occ.CheckInDate,
		CheckOutDate:  checkOut,
		Nights:        nights,
		NightlyRate:   nightlyRate,
		RoomCharge:    roomCharge,
		ServiceCharge: occ.ServiceCharge,
		Total:         roomCharge + occ.ServiceCharge,
	}
}
