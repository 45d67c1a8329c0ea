package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTime(t *testing.T) {
	t.Run("combines date and time into one instant", func(t *testing.T) {
		parsed, err := ParseDateTime("2024-07-01", "14:30")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.July, 1, 14, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		_, err := ParseDateTime("2024-13-23", "09:41")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("rejects an out-of-range day", func(t *testing.T) {
		_, err := ParseDateTime("2023-02-29", "09:00")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("rejects an out-of-range hour", func(t *testing.T) {
		_, err := ParseDateTime("2024-11-06", "25:00")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("rejects an empty date", func(t *testing.T) {
		_, err := ParseDateTime("", "14:30")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})
}

func TestToDateRange(t *testing.T) {
	t.Run("well-formed event yields its start and end", func(t *testing.T) {
		workout := Event{
			ID:        "80d85368-b4a4-47b3-b959-25171d49371f",
			Title:     "운동",
			Date:      "2024-11-22",
			StartTime: "18:00",
			EndTime:   "19:00",
			Location:  "헬스장",
		}

		r, err := ToDateRange(workout)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.November, 22, 18, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.November, 22, 19, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("malformed date propagates the parse error", func(t *testing.T) {
		_, err := ToDateRange(Event{Date: "2024-13-31", StartTime: "18:00", EndTime: "19:00"})
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("malformed time propagates the parse error", func(t *testing.T) {
		_, err := ToDateRange(Event{Date: "2024-12-25", StartTime: "33:00", EndTime: "35:00"})
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})
}

func TestIsOverlapping(t *testing.T) {
	workout := Event{ID: "a", Title: "운동", Date: "2024-11-22", StartTime: "18:00", EndTime: "19:00"}

	t.Run("identical windows overlap", func(t *testing.T) {
		dinner := Event{ID: "b", Title: "치맥", Date: "2024-11-22", StartTime: "18:00", EndTime: "19:00"}
		assert.True(t, IsOverlapping(workout, dinner))
	})

	t.Run("different days do not overlap", func(t *testing.T) {
		session := Event{ID: "b", Title: "항해 정기세션", Date: "2024-11-09", StartTime: "13:00", EndTime: "18:00"}
		assert.False(t, IsOverlapping(workout, session))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		later := Event{ID: "b", Date: "2024-11-22", StartTime: "19:00", EndTime: "20:00"}
		assert.False(t, IsOverlapping(workout, later))
	})

	t.Run("partial intersection overlaps", func(t *testing.T) {
		late := Event{ID: "b", Date: "2024-11-22", StartTime: "18:30", EndTime: "19:30"}
		assert.True(t, IsOverlapping(workout, late))
	})

	t.Run("an invalid range never overlaps", func(t *testing.T) {
		broken := Event{ID: "b", Date: "2024-13-22", StartTime: "18:00", EndTime: "19:00"}
		assert.False(t, IsOverlapping(workout, broken))
		assert.False(t, IsOverlapping(broken, workout))
	})
}

func TestFindOverlapping(t *testing.T) {
	registered := []Event{
		{ID: "80d85368-b4a4-47b3-b959-25171d49371f", Title: "운동", Date: "2024-11-22", StartTime: "18:00", EndTime: "19:00"},
		{ID: "09702fb3-a478-40b3-905e-9ab3c8849dcd", Title: "항해 정기세션", Date: "2024-11-09", StartTime: "13:00", EndTime: "18:00"},
	}

	t.Run("returns every overlapping event", func(t *testing.T) {
		party := Event{ID: "dac62941-69e5-4ec0-98cc-24c2a79a7f81", Title: "생일 파티", Date: "2024-11-22", StartTime: "18:00", EndTime: "19:00"}

		result := FindOverlapping(party, registered)
		assert.Len(t, result, 1)
		assert.Equal(t, "운동", result[0].Title)
	})

	t.Run("no overlap yields an empty result", func(t *testing.T) {
		hospital := Event{ID: "da3ca408-836a-4d98-b67a-ca389d07552b", Title: "병원", Date: "2024-11-07", StartTime: "09:30", EndTime: "10:00"}

		result := FindOverlapping(hospital, registered)
		assert.Empty(t, result)
	})

	t.Run("the candidate is excluded by id", func(t *testing.T) {
		self := registered[0]
		result := FindOverlapping(self, registered)
		assert.Empty(t, result)
	})
}
