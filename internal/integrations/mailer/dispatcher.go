package mailer

import (
	"context"
	"time"
)

const (
	dispatchQueueSize = 100
	sendTimeout       = 30 * time.Second
)

// Sender интерфейс отправителя уведомлений
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Dispatcher асинхронная очередь уведомлений: fire-and-forget.
// Жизненный цикл бронирования никогда не блокируется и не падает из-за почты:
// при переполненной очереди уведомление отбрасывается с записью в лог,
// ошибка отправки только логируется.
type Dispatcher struct {
	sender Sender
	queue  chan Notification
	done   chan struct{}
	logger Logger
}

// NewDispatcher создает диспетчер и запускает воркер отправки
func NewDispatcher(sender Sender, logger Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Notification, dispatchQueueSize),
		done:   make(chan struct{}),
		logger: logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, n); err != nil {
			d.logger.Error("mailer: send %s to %s failed: %v", n.Kind, n.To, err)
		} else {
			d.logger.Info("mailer: sent %s to %s for %s", n.Kind, n.To, n.BookingReference)
		}
		cancel()
	}
}

// Dispatch ставит уведомление в очередь, не блокируясь
func (d *Dispatcher) Dispatch(n Notification) {
	select {
	case d.queue <- n:
	default:
		d.logger.Warn("mailer: queue full, dropping %s to %s", n.Kind, n.To)
	}
}

// Close останавливает воркер, дождавшись отправки уже принятых уведомлений
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
