package domain

// PaymentDetails is static bank transfer information displayed to the guest.
// It is informational text only; no payment is processed.
type PaymentDetails struct {
	BankName      string
	AccountNumber string
	RoutingCode   string // IFSC
	AccountHolder string
}
