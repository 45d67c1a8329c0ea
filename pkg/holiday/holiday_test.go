package holiday

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForMonth(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)

	t.Run("october carries two holidays", func(t *testing.T) {
		holidays := service.ForMonth(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, map[string]string{
			"2024-10-03": "개천절",
			"2024-10-09": "한글날",
		}, holidays)
	})

	t.Run("a multi-day holiday yields one entry per day", func(t *testing.T) {
		holidays := service.ForMonth(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, map[string]string{
			"2024-02-09": "설날",
			"2024-02-10": "설날",
			"2024-02-11": "설날",
		}, holidays)
	})

	t.Run("months without holidays yield an empty map", func(t *testing.T) {
		holidays := service.ForMonth(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC))
		assert.Empty(t, holidays)
	})

	t.Run("the reference day within the month does not matter", func(t *testing.T) {
		first := service.ForMonth(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC))
		last := service.ForMonth(time.Date(2024, time.October, 31, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, first, last)
	})
}

func TestGetHolidays(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	handler := NewHandler(service)

	t.Run("returns the month's holidays", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.GetHolidays(recorder, httptest.NewRequest("GET", "/api/holidays?date=2024-10-15", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		var holidays map[string]string
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &holidays))
		assert.Equal(t, "개천절", holidays["2024-10-03"])
		assert.Equal(t, "한글날", holidays["2024-10-09"])
	})

	t.Run("missing or malformed date is rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.GetHolidays(recorder, httptest.NewRequest("GET", "/api/holidays", nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = httptest.NewRecorder()
		handler.GetHolidays(recorder, httptest.NewRequest("GET", "/api/holidays?date=10-15-2024", nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
