package mailer

// Kind тип уведомления
type Kind string

const (
	KindBookingCreated     Kind = "booking_created"
	KindBookingConfirmed   Kind = "booking_confirmed"
	KindBookingRescheduled Kind = "booking_rescheduled"
	KindBookingCancelled   Kind = "booking_cancelled"
)

// Notification письмо клиенту о событии бронирования.
// Все поля уже отформатированы вызывающей стороной: интеграция не знает
// о доменных типах сервиса.
type Notification struct {
	Kind Kind
	To   string

	CustomerName     string
	BookingReference string
	PackageName      string
	Date             string
	StartTime        string
	EndTime          string
	NumPeople        int
	TotalAmount      float64

	// Reason причина (для отмены и переноса)
	Reason string
}

// Config настройки SMTP подключения
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}
