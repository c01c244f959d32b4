package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/imarastudio/IMS-BookingService/internal/api/handlers"
	"github.com/imarastudio/IMS-BookingService/internal/domain"
	getAvailableSlots "github.com/imarastudio/IMS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidPackageID = "invalid package ID"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidPeople    = "invalid number of people"
	msgPackageNotFound  = "package not found"
	msgPackageInactive  = "package is not available for booking"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/available-slots?date=YYYY-MM-DD&num_people=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/available-slots - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /packages/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Число людей по умолчанию 1: одиночные посетители не обязаны его указывать
	numPeople := 1
	if raw := r.URL.Query().Get("num_people"); raw != "" {
		numPeople, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /packages/{id}/available-slots - Invalid num_people: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeople)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PackageID: packageID,
		Date:      date,
		NumPeople: numPeople,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/available-slots - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailableSlots.ErrPackageInactive):
			h.logger.Warn("GET /packages/{id}/available-slots - Package inactive: package_id=%d", packageID)
			handlers.RespondBadRequest(w, msgPackageInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /packages/{id}/available-slots - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/{id}/available-slots - %d slots for package_id=%d, date=%s",
		len(result.Slots), packageID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
