package domain

import "errors"

// ErrChargeOverflow is returned when a charge would leave the billable range
var ErrChargeOverflow = errors.New("domain: charge exceeds billable limit")
