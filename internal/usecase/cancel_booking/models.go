package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
	Reason    string
}

// Response модель ответа об отмене
type Response struct {
	ID        int64
	Reference string
	Status    string
}
