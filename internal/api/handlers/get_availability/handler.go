package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bettersystemsai/BSA-BookingService/internal/api/handlers"
	getAvailability "github.com/bettersystemsai/BSA-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate     = "Invalid date format, expected YYYY-MM-DD"
	msgDateNotBookable = "That date is not open for booking"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	useCaseReq, err := ToUseCaseRequest(vars["date"])
	if err != nil {
		h.logger.Warn("GET /bookings/availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /bookings/availability/{date} - Date not bookable: %v", err)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /bookings/availability/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/availability/{date} - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/availability/{date} - Availability retrieved: date=%s, slots=%d",
		vars["date"], len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
