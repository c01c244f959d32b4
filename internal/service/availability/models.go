package availability

import (
	"time"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	"github.com/imarastudio/IMS-BookingService/pkg/types"
)

// CheckRequest запрос проверки доступности слота
type CheckRequest struct {
	Date      time.Time
	StartTime types.TimeString
	Package   *domain.Package
	NumPeople int

	// ExcludeBookingID бронирование, исключаемое из всех проверок занятости.
	// При переносе собственные круги бронирования возвращаются в пул,
	// чтобы оно не блокировало свой же слот.
	ExcludeBookingID *int64
}

// Result результат проверки доступности. Отказ в доступности - это ожидаемый
// исход, а не ошибка: IsAvailable=false с человекочитаемой причиной.
type Result struct {
	IsAvailable bool
	Reason      string

	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	PackageName     string
	NumPeople       int
	DurationDisplay string

	// WheelAvailable true, когда пакету нужны круги и их хватает
	// (для пакетов без кругов всегда true)
	WheelAvailable  bool
	WheelsAvailable int
	WheelsRequired  int
}

func reject(req *CheckRequest, reason string) *Result {
	return &Result{
		IsAvailable: false,
		Reason:      reason,
		Date:        req.Date,
		StartTime:   req.StartTime,
		PackageName: req.Package.Name,
		NumPeople:   req.NumPeople,
	}
}
