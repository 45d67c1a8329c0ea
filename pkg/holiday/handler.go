package holiday

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalyeok/dalyeok/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetHolidays returns the holidays of the month containing the "date"
// query parameter (YYYY-MM-DD).
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateString := r.URL.Query().Get("date")
	date, err := time.ParseInLocation("2006-01-02", dateString, time.UTC)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(h.service.ForMonth(date)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
