package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/dalyeok/dalyeok/internal/utils"
	"github.com/dalyeok/dalyeok/pkg/event"
)

func newRouterForTest(scheduler *Scheduler) *mux.Router {
	handler := NewHandler(scheduler)
	router := mux.NewRouter()
	router.HandleFunc("/api/notifications", handler.GetNotifications).Methods("GET")
	router.HandleFunc("/api/notifications/{index}", handler.DismissNotification).Methods("DELETE")
	return router
}

func TestGetNotifications(t *testing.T) {
	t.Run("empty scheduler yields an empty list", func(t *testing.T) {
		router := newRouterForTest(NewScheduler(&utils.MockClock{FixedNow: at(8, 0)}))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/notifications", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var notifications []Notification
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &notifications))
		assert.Empty(t, notifications)
	})

	t.Run("active notifications are listed in creation order", func(t *testing.T) {
		scheduler := NewScheduler(&utils.MockClock{FixedNow: at(9, 20)})
		scheduler.Tick([]event.Event{workout})
		router := newRouterForTest(scheduler)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/notifications", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var notifications []Notification
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &notifications))
		assert.Len(t, notifications, 1)
		assert.Equal(t, "10분 후 운동 일정이 시작됩니다.", notifications[0].Message)
	})
}

func TestDismissNotification(t *testing.T) {
	t.Run("removes the notification by position", func(t *testing.T) {
		scheduler := NewScheduler(&utils.MockClock{FixedNow: at(9, 20)})
		scheduler.Tick([]event.Event{workout})
		router := newRouterForTest(scheduler)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/notifications/0", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, scheduler.Notifications())
	})

	t.Run("non-numeric index is rejected", func(t *testing.T) {
		router := newRouterForTest(NewScheduler(&utils.MockClock{FixedNow: at(9, 20)}))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/notifications/first", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("position past the list yields 404", func(t *testing.T) {
		router := newRouterForTest(NewScheduler(&utils.MockClock{FixedNow: at(9, 20)}))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/notifications/3", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
