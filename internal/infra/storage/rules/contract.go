package rules

import "github.com/imarastudio/IMS-BookingService/pkg/pgtx"

// Переиспользуем интерфейсы из pgtx для работы с БД
type DBExecutor = pgtx.DBExecutor
type TxExecutor = pgtx.TxExecutor
