package create_booking

import (
	"errors"
	"net/http"

	"github.com/bettersystemsai/BSA-BookingService/internal/api/handlers"
	createBooking "github.com/bettersystemsai/BSA-BookingService/internal/usecase/create_booking"
)

const (
	msgBookingConfirmed   = "Your discovery call is booked. A confirmation email is on its way."
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDateFormat  = "Invalid date or time format, expected date YYYY-MM-DD and time HH:MM"
	msgMissingFields      = "Missing required fields: date, time, name, email"
	msgInvalidInput       = "Invalid booking details"
	msgDateNotBookable    = "That date is not open for booking"
	msgInvalidSlot        = "That time is not one of the offered slots"
	msgSlotUnavailable    = "That time was just booked by someone else. Please pick another slot."
	msgBookingFailed      = "Failed to process booking. Please try again."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingRequiredField):
			h.logger.Warn("POST /book - Missing required field: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /book - Date not bookable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /book - Invalid slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /book - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /book - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: booking_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
