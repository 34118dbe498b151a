package check_in

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if utf8.RuneCountInString(req.GuestID) > domain.MaxGuestIDLength {
		return fmt.Errorf("%w: guest id exceeds %d characters", ErrInvalidInput, domain.MaxGuestIDLength)
	}

	if err := validatePhone(req.Phone); err != nil {
		return err
	}

	if strings.TrimSpace(req.RoomType) == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}

	// Дата в прошлом или будущем допустима, важно только что она указана
	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}

	return nil
}

// validatePhone проверяет, что телефон указан и состоит только из цифр
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d digits", ErrInvalidInput, domain.MaxPhoneLength)
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: phone must contain digits only", ErrInvalidInput)
		}
	}
	return nil
}
