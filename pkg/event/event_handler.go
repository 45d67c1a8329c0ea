package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dalyeok/dalyeok/internal/rest"
	"github.com/dalyeok/dalyeok/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RepeatDTO struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
}

type EventDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	Repeat           RepeatDTO `json:"repeat"`
	RepeatID         string    `json:"repeatId,omitempty"`
	NotificationTime int       `json:"notificationTime"`
}

type eventsResponse struct {
	Events []EventDTO `json:"events"`
}

type EventHandler struct {
	eventService EventService
	clock        utils.Clock
}

func NewEventHandler(eventService EventService, clock utils.Clock) *EventHandler {
	return &EventHandler{eventService: eventService, clock: clock}
}

// GetEvents lists all events, or a filtered subset when the "view" query
// parameter is present ("week" or "month"; "date" anchors the window and
// defaults to today, "q" adds a free-text filter).
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var events []Event
	var err error

	view := r.URL.Query().Get("view")
	if view == "" {
		events, err = h.eventService.ListEvents(r.Context())
	} else {
		if view != string(ViewWeek) && view != string(ViewMonth) {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, rest.ErrorResponse{
				Error:   "Invalid view",
				Details: "'view' must be either 'week' or 'month'",
			})
			return
		}

		ref := h.clock.Now()
		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			ref, err = time.ParseInLocation(dateLayout, dateParam, time.UTC)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				writeJSON(w, rest.ErrorResponse{
					Error:   "Invalid date format",
					Details: "'date' must be in YYYY-MM-DD format",
				})
				return
			}
		}
		events, err = h.eventService.Search(r.Context(), r.URL.Query().Get("q"), ref, View(view))
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	writeJSON(w, eventsResponse{Events: dtos})
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new event")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	created, err := h.eventService.CreateEvent(r.Context(), dtoToEvent(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, eventToDTO(created))
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	updated, err := h.eventService.UpdateEvent(r.Context(), id, dtoToEvent(dto))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, rest.ErrorResponse{Error: "이벤트 없음"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, eventToDTO(updated))
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]
	log.Tracef("Deleting event %s", id)

	if err := h.eventService.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, rest.ErrorResponse{Error: "이벤트 없음"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FindOverlaps reports which stored events would double-book the draft in
// the request body. Meant to be called by the UI before saving.
func (h *EventHandler) FindOverlaps(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	overlapping, err := h.eventService.FindOverlapping(r.Context(), dtoToEvent(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(overlapping))
	for _, e := range overlapping {
		dtos = append(dtos, eventToDTO(e))
	}
	writeJSON(w, eventsResponse{Events: dtos})
}

func writeJSON(w http.ResponseWriter, body any) {
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:               e.ID,
		Title:            e.Title,
		Date:             e.Date,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Description:      e.Description,
		Location:         e.Location,
		Category:         e.Category,
		Repeat:           RepeatDTO{Type: string(e.Repeat.Type), Interval: e.Repeat.Interval},
		RepeatID:         e.RepeatID,
		NotificationTime: e.NotificationTime,
	}
}

func dtoToEvent(dto EventDTO) Event {
	repeatType := RepeatType(dto.Repeat.Type)
	if repeatType == "" {
		repeatType = RepeatNone
	}
	return Event{
		ID:               dto.ID,
		Title:            dto.Title,
		Date:             dto.Date,
		StartTime:        dto.StartTime,
		EndTime:          dto.EndTime,
		Description:      dto.Description,
		Location:         dto.Location,
		Category:         dto.Category,
		Repeat:           Repeat{Type: repeatType, Interval: dto.Repeat.Interval},
		RepeatID:         dto.RepeatID,
		NotificationTime: dto.NotificationTime,
	}
}
