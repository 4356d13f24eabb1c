package get_booked_times

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bettersystemsai/BSA-BookingService/internal/api/handlers"
	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

const (
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/slots/{date}
// Возвращает только занятые времена: клиент сверяет их с фиксированным
// каталогом из 13 слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], domain.BusinessLocation)
	if err != nil {
		h.logger.Warn("GET /bookings/slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookedTimes, err := h.service.GetBookedTimes(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings/slots/{date} - Failed to get booked times: date=%s, error=%v",
			vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/slots/{date} - Booked times retrieved: date=%s, count=%d",
		vars["date"], len(bookedTimes))
	handlers.RespondJSON(w, http.StatusOK, BookedTimesResponse{
		Success:     true,
		Date:        date.Format(domain.DateFormat),
		BookedTimes: bookedTimes,
	})
}
