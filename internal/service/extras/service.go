package extras

import (
	"context"
	"errors"
	"fmt"

	"github.com/imarastudio/IMS-BookingService/internal/domain"
	bookingRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/booking"
	extrasRepo "github.com/imarastudio/IMS-BookingService/internal/infra/storage/extras"
	"github.com/imarastudio/IMS-BookingService/internal/service/extras/models"
)

// Service сервис послесессионных услуг: обжиг, роспись, глазуровка,
// дополнительная глина. Цены всегда берутся из прайс-каталога на момент
// создания услуги, клиентский ввод цен не принимается.
type Service struct {
	extrasRepo  ExtrasRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса послесессионных услуг
func NewService(extrasRepo ExtrasRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		extrasRepo:  extrasRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create добавляет послесессионную услугу к бронированию.
// Итоговая стоимость вычисляется от каталожной цены и количества.
func (s *Service) Create(ctx context.Context, req *models.CreatePostSessionRequest) (*models.PostSessionResponse, error) {
	s.logger.Info("Create: adding %s service to booking id=%d", req.ServiceType, req.BookingID)

	serviceType := domain.PostSessionType(req.ServiceType)
	if !serviceType.Valid() {
		s.logger.Warn("Create: invalid service type=%s", req.ServiceType)
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	// Бронирование должно существовать: услуги висят на нём
	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	svc := &domain.PostSessionService{
		BookingID:   req.BookingID,
		ServiceType: serviceType,
		Notes:       req.Notes,
	}

	if err := s.priceService(ctx, svc, req); err != nil {
		return nil, err
	}

	created, err := s.extrasRepo.CreatePostSession(ctx, svc)
	if err != nil {
		s.logger.Error("Create: failed to save service for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - failed to save: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added %s service id=%d to booking id=%d, total=%.2f",
		created.ServiceType, created.ID, created.BookingID, created.TotalPrice)
	return models.FromDomainPostSession(created), nil
}

// ListByBooking возвращает послесессионные услуги бронирования с общей суммой
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.PostSessionListResponse, error) {
	services, err := s.extrasRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPostSessionList(services), nil
}

// priceService заполняет ссылку на каталог, количество и стоимость услуги
// в зависимости от её типа
func (s *Service) priceService(ctx context.Context, svc *domain.PostSessionService, req *models.CreatePostSessionRequest) error {
	switch svc.ServiceType {
	case domain.PostSessionFiring:
		if req.FiringChargeID == nil {
			return fmt.Errorf("%w: firing_charge_id is required for firing", ErrInvalidInput)
		}
		if req.PieceCount < 1 {
			return fmt.Errorf("%w: piece_count must be positive", ErrInvalidInput)
		}
		charge, err := s.extrasRepo.GetFiringCharge(ctx, *req.FiringChargeID)
		if err != nil {
			return s.catalogError(err, "firing charge", *req.FiringChargeID)
		}
		svc.FiringChargeID = req.FiringChargeID
		svc.PieceCount = req.PieceCount
		svc.PieceDescription = req.PieceDescription
		svc.UnitPrice, svc.TotalPrice = domain.ComputeFiringTotal(charge, req.PieceCount)

	case domain.PostSessionPainting, domain.PostSessionGlazing:
		if req.PaintingOptionID == nil {
			return fmt.Errorf("%w: painting_option_id is required for %s", ErrInvalidInput, svc.ServiceType)
		}
		if req.ItemCount < 1 {
			return fmt.Errorf("%w: item_count must be positive", ErrInvalidInput)
		}
		option, err := s.extrasRepo.GetPaintingOption(ctx, *req.PaintingOptionID)
		if err != nil {
			return s.catalogError(err, "painting option", *req.PaintingOptionID)
		}
		svc.PaintingOptionID = req.PaintingOptionID
		svc.ItemCount = req.ItemCount
		svc.UnitPrice, svc.TotalPrice = domain.ComputePaintingTotal(option, req.ItemCount)

	default:
		if req.ExtraServiceID == nil {
			return fmt.Errorf("%w: extra_service_id is required for %s", ErrInvalidInput, svc.ServiceType)
		}
		if req.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		extra, err := s.extrasRepo.GetExtraService(ctx, *req.ExtraServiceID)
		if err != nil {
			return s.catalogError(err, "extra service", *req.ExtraServiceID)
		}
		svc.ExtraServiceID = req.ExtraServiceID
		svc.Quantity = req.Quantity
		svc.UnitPrice, svc.TotalPrice = domain.ComputeExtraTotal(extra, req.Quantity)
	}

	return nil
}

func (s *Service) catalogError(err error, entity string, id int64) error {
	if errors.Is(err, extrasRepo.ErrCatalogEntryNotFound) {
		s.logger.Warn("priceService: %s id=%d not found", entity, id)
		return fmt.Errorf("%w: %s %d", ErrCatalogEntryNotFound, entity, id)
	}
	s.logger.Error("priceService: failed to load %s id=%d: %v", entity, id, err)
	return fmt.Errorf("%w: failed to load %s: %v", ErrInternal, entity, err)
}
