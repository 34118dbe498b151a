package checkout

import "github.com/m04kA/SMC-HotelService/internal/domain"

// Request модель запроса на выселение
type Request struct {
	RoomNumber int
}

// Response модель ответа с итоговым чеком
type Response struct {
	Receipt *domain.Receipt
	Payment domain.PaymentDetails // реквизиты для оплаты, только для отображения
}
