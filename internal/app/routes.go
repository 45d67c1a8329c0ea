package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Events
	r.HandleFunc("/api/events", deps.EventHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/events", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/events/overlaps", deps.EventHandler.FindOverlaps).Methods("POST")
	r.HandleFunc("/api/events/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/events/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// Notifications
	r.HandleFunc("/api/notifications", deps.NotificationHandler.GetNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/{index}", deps.NotificationHandler.DismissNotification).Methods("DELETE")

	// Holidays
	r.HandleFunc("/api/holidays", deps.HolidayHandler.GetHolidays).Queries("date", "{date}").Methods("GET")
}
