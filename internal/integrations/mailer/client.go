package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP клиент уведомлений о бронированиях.
// При Enabled=false все отправки молча пропускаются: сервис работает
// без SMTP в dev-окружении.
type Client struct {
	smtp     *mail.Client
	from     string
	fromName string
	enabled  bool
	logger   Logger
}

// NewClient создает SMTP клиент уведомлений
func NewClient(cfg Config, logger Logger) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false, logger: logger}, nil
	}

	smtp, err := mail.NewClient(
		cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitClient, err)
	}

	return &Client{
		smtp:     smtp,
		from:     cfg.From,
		fromName: cfg.FromName,
		enabled:  true,
		logger:   logger,
	}, nil
}

// Send отправляет уведомление. Вызывающая сторона не должна блокироваться
// на этом методе - в жизненном цикле бронирования отправка идет через Dispatcher.
func (c *Client) Send(ctx context.Context, n Notification) error {
	if !c.enabled {
		c.logger.Info("mailer: disabled, skipping %s to %s", n.Kind, n.To)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(c.fromName, c.from); err != nil {
		return fmt.Errorf("%w: from address: %v", ErrBuildMessage, err)
	}
	if err := msg.To(n.To); err != nil {
		return fmt.Errorf("%w: to address: %v", ErrBuildMessage, err)
	}

	msg.Subject(subjectFor(n))
	msg.SetBodyString(mail.TypeTextPlain, bodyFor(n))

	if err := c.smtp.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

func subjectFor(n Notification) string {
	switch n.Kind {
	case KindBookingCreated:
		return fmt.Sprintf("Booking received - %s", n.BookingReference)
	case KindBookingConfirmed:
		return fmt.Sprintf("Booking confirmed - %s", n.BookingReference)
	case KindBookingRescheduled:
		return fmt.Sprintf("Booking rescheduled - %s", n.BookingReference)
	case KindBookingCancelled:
		return fmt.Sprintf("Booking cancelled - %s", n.BookingReference)
	default:
		return fmt.Sprintf("Booking update - %s", n.BookingReference)
	}
}

func bodyFor(n Notification) string {
	switch n.Kind {
	case KindBookingCreated:
		return fmt.Sprintf(
			"Dear %s,\n\nThank you for booking with Imara Studio!\n\n"+
				"Reference: %s\nPackage: %s\nDate: %s\nTime: %s - %s\nGroup size: %d\nTotal: KES %.2f\n\n"+
				"Your session will be confirmed once payment is received.\n\nImara Studio",
			n.CustomerName, n.BookingReference, n.PackageName,
			n.Date, n.StartTime, n.EndTime, n.NumPeople, n.TotalAmount,
		)
	case KindBookingConfirmed:
		return fmt.Sprintf(
			"Dear %s,\n\nYour booking %s is confirmed.\n\n"+
				"Package: %s\nDate: %s\nTime: %s - %s\n\nSee you at the studio!\n\nImara Studio",
			n.CustomerName, n.BookingReference, n.PackageName,
			n.Date, n.StartTime, n.EndTime,
		)
	case KindBookingRescheduled:
		return fmt.Sprintf(
			"Dear %s,\n\nYour booking %s has been rescheduled.\n\n"+
				"Package: %s\nNew date: %s\nNew time: %s - %s\n\nImara Studio",
			n.CustomerName, n.BookingReference, n.PackageName,
			n.Date, n.StartTime, n.EndTime,
		)
	case KindBookingCancelled:
		body := fmt.Sprintf(
			"Dear %s,\n\nYour booking %s has been cancelled.",
			n.CustomerName, n.BookingReference,
		)
		if n.Reason != "" {
			body += fmt.Sprintf("\nReason: %s", n.Reason)
		}
		return body + "\n\nWe hope to see you another time.\n\nImara Studio"
	default:
		return fmt.Sprintf("Dear %s,\n\nYour booking %s has been updated.\n\nImara Studio",
			n.CustomerName, n.BookingReference)
	}
}
