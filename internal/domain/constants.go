package domain

// Billing rules
const (
	MinStayNights = 1 // same-day checkout still bills one night

	// Bounds keep every receipt total inside int64 for any date in 0001..9999
	MaxNightlyRate   int64 = 1_000_000_000
	MaxUnitPrice     int64 = 1_000_000_000
	MaxServiceCharge int64 = 1_000_000_000_000_000
	MaxItemQuantity        = 1000
)

// Guest input limits
const (
	MaxGuestNameLength = 200
	MaxGuestIDLength   = 200
	MaxPhoneLength     = 15
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultRoomTypes is the hotel layout used when config.toml declares no room types
var DefaultRoomTypes = []RoomTypeConfig{
	{Type: RoomTypeStandard, NightlyRate: 2000, Rooms: []int{101, 102, 103}},
	{Type: RoomTypeDeluxe, NightlyRate: 4000, Rooms: []int{201, 202, 203}},
	{Type: RoomTypeExecutive, NightlyRate: 6000, Rooms: []int{301, 302, 303}},
	{Type: RoomTypeSuite, NightlyRate: 8000, Rooms: []int{401, 402, 403}},
}

// DefaultMenu is the room service catalog used when config.toml declares no menu
var DefaultMenu = []MenuItem{
	{Code: "tea", Name: "Tea", UnitPrice: 70},
	{Code: "coffee", Name: "Coffee", UnitPrice: 100},
	{Code: "juice", Name: "Juice", UnitPrice: 50},
	{Code: "breakfast", Name: "Breakfast", UnitPrice: 150},
	{Code: "lunch", Name: "Lunch", UnitPrice: 200},
}

// DefaultPaymentDetails is the bank transfer information shown before checkout
var DefaultPaymentDetails = PaymentDetails{
	BankName:      "Kotak Mahindra Bank",
	AccountNumber: "1234567890",
	RoutingCode:   "KKBK0001234",
	AccountHolder: "Star Aluminium Pvt. Ltd.",
}
