package get_day_bookings

import (
	"net/http"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/api/handlers"
	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

const (
	msgMissingDate = "Missing required query parameter: date"
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

// Handle GET /api/admin/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/bookings - Missing date query parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.BusinessLocation)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date: date=%s, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings listed successfully: date=%s, count=%d", dateStr, len(list.Bookings))
	handlers.RespondJSON(w, http.StatusOK, list)
}
