package get_available_slots

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PackageID int64     // ID пакета
	Date      time.Time // Дата для получения слотов (без времени)
	NumPeople int       // Размер группы
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time     // Дата, на которую запрашивались слоты
	PackageID   int64         // ID пакета
	PackageName string        // Название пакета
	NumPeople   int           // Размер группы
	Slots       []domain.Slot // Доступные слоты по возрастанию времени начала
}
