package mailer

import "errors"

var (
	// ErrInitClient возвращается при ошибке инициализации SMTP клиента
	ErrInitClient = errors.New("mailer: failed to initialize smtp client")

	// ErrBuildMessage возвращается при ошибке сборки письма
	ErrBuildMessage = errors.New("mailer: failed to build message")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send message")
)
