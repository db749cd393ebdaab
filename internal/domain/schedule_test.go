package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Validate(t *testing.T) {
	assert.NoError(t, window("09:15", "17:40").Validate())
	assert.ErrorIs(t, window("12:00", "12:00").Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, window("20:00", "12:00").Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, Window{From: "25:00", To: "26:00"}.Validate(), ErrInvalidWindow)
}

func TestDefaultWeeklyHours(t *testing.T) {
	hours := DefaultWeeklyHours()

	assert.Len(t, hours, 7)
	assert.Nil(t, hours.For(time.Sunday))
	for _, day := range []time.Weekday{time.Monday, time.Wednesday, time.Saturday} {
		require.NotNil(t, hours.For(day))
		assert.Equal(t, "12:00", hours.For(day).From.String())
		assert.Equal(t, "20:00", hours.For(day).To.String())
	}

	// 2025-03-09 воскресенье
	assert.Nil(t, hours.ForDate(date("2025-03-09")))
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" Friday ")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, day)
	assert.Equal(t, "friday", WeekdayName(day))

	_, err = ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestReminderKind(t *testing.T) {
	for _, kind := range AllReminderKinds {
		assert.True(t, kind.Valid())
		assert.Positive(t, kind.Offset())
	}
	assert.Equal(t, "reminder_2h_sent_at", ReminderH2.Column())
	assert.Equal(t, 30*time.Minute, ReminderM30.Offset())
	assert.False(t, ReminderKind(0).Valid())
}
