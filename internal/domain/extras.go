package domain

import (
	"errors"
	"time"
)

// PostSessionType тип послесессионной услуги
type PostSessionType string

const (
	PostSessionFiring    PostSessionType = "firing"
	PostSessionPainting  PostSessionType = "painting"
	PostSessionGlazing   PostSessionType = "glazing"
	PostSessionExtraClay PostSessionType = "extra_clay"
	PostSessionOther     PostSessionType = "other"
)

// Valid возвращает true для известного типа услуги
func (t PostSessionType) Valid() bool {
	switch t {
	case PostSessionFiring, PostSessionPainting, PostSessionGlazing,
		PostSessionExtraClay, PostSessionOther:
		return true
	}
	return false
}

// FiringCharge тариф обжига по размеру изделия (прайс-каталог)
type FiringCharge struct {
	ID            int64
	Name          string
	SizeCategory  string
	Description   *string
	Price         float64
	HobbyistPrice *float64
	MaxDiameterCm *float64
	MaxHeightCm   *float64
	IsActive      bool
}

// PaintingGlazingOption вариант росписи/глазуровки (прайс-каталог)
type PaintingGlazingOption struct {
	ID              int64
	Name            string
	OptionType      string
	Description     *string
	PricePerItem    *float64
	PricePerSession *float64
	DurationHours   *float64
	IncludesPaints  bool
	IsActive        bool
}

// ExtraService дополнительная услуга (прайс-каталог)
type ExtraService struct {
	ID          int64
	Name        string
	ServiceType string
	Description *string
	Price       float64
	Unit        *string // например, "per kg", "per day"
	IsActive    bool
}

// PostSessionService послесессионная услуга по бронированию: обжиг, роспись,
// глазуровка, дополнительная глина. Итоговая цена пересчитывается при каждом
// сохранении от текущей цены каталога и зафиксированного количества.
type PostSessionService struct {
	ID          int64
	BookingID   int64
	ServiceType PostSessionType

	FiringChargeID   *int64
	PieceCount       int
	PieceDescription *string

	PaintingOptionID *int64
	ItemCount        int

	ExtraServiceID *int64
	Quantity       float64

	UnitPrice  float64
	TotalPrice float64

	IsPaid      bool
	IsCompleted bool
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	// ErrCatalogEntryRequired услуга должна ссылаться на позицию каталога своего типа
	ErrCatalogEntryRequired = errors.New("post-session service requires a catalog entry of its type")
)

// ComputeFiringTotal цена обжига: тариф × количество изделий
func ComputeFiringTotal(charge *FiringCharge, pieceCount int) (unit, total float64) {
	unit = charge.Price
	return unit, unit * float64(pieceCount)
}

// ComputePaintingTotal цена росписи/глазуровки: за изделие либо за сессию
func ComputePaintingTotal(option *PaintingGlazingOption, itemCount int) (unit, total float64) {
	if option.PricePerItem != nil {
		unit = *option.PricePerItem
		return unit, unit * float64(itemCount)
	}
	if option.PricePerSession != nil {
		unit = *option.PricePerSession
		return unit, unit
	}
	return 0, 0
}

// ComputeExtraTotal цена дополнительной услуги: тариф × количество
func ComputeExtraTotal(extra *ExtraService, quantity float64) (unit, total float64) {
	unit = extra.Price
	return unit, unit * quantity
}
