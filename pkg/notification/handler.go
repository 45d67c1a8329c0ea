package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalyeok/dalyeok/internal/rest"
	"github.com/gorilla/mux"
)

type Handler struct {
	scheduler *Scheduler
}

func NewHandler(scheduler *Scheduler) *Handler {
	return &Handler{scheduler: scheduler}
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	notifications := h.scheduler.Notifications()
	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DismissNotification removes one active notification by its position in
// the current list.
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	indexString := mux.Vars(r)["index"]
	index, err := strconv.Atoi(indexString)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid notification index",
			Details: "'index' must be an integer position",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.scheduler.Dismiss(index); err != nil {
		if errors.Is(err, ErrNoSuchNotification) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
