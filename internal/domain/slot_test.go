package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func window(from, to string) *Window {
	return &Window{From: types.MustTimeString(from), To: types.MustTimeString(to)}
}

func times(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.MustTimeString(v))
	}
	return result
}

func TestGenerateSlots(t *testing.T) {
	noon := window("12:00", "20:00")

	t.Run("base window includes closing time", func(t *testing.T) {
		slots := GenerateSlots(noon, 0)
		assert.Len(t, slots, 17)
		assert.Equal(t, types.TimeString("12:00"), slots[0])
		assert.Equal(t, types.TimeString("12:30"), slots[1])
		assert.Equal(t, types.TimeString("20:00"), slots[16])
	})

	t.Run("positive extra appends", func(t *testing.T) {
		slots := GenerateSlots(noon, 2)
		assert.Len(t, slots, 19)
		assert.Equal(t, times("20:00", "20:30", "21:00"), slots[16:])
	})

	t.Run("negative extra truncates", func(t *testing.T) {
		slots := GenerateSlots(noon, -2)
		assert.Len(t, slots, 15)
		assert.Equal(t, types.TimeString("19:00"), slots[len(slots)-1])
	})

	t.Run("closed day ignores extra", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(nil, 5))
		assert.Empty(t, GenerateSlots(nil, -5))
	})

	t.Run("negative extra floors at zero", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(window("12:00", "13:00"), -10))
	})

	t.Run("unaligned closing time", func(t *testing.T) {
		assert.Equal(t, times("12:00", "12:30"), GenerateSlots(window("12:00", "12:45"), 0))
	})

	t.Run("extra stops at end of day", func(t *testing.T) {
		assert.Equal(t, times("23:00", "23:30"), GenerateSlots(window("23:00", "23:30"), 5))
	})
}

func TestDroppedSlots(t *testing.T) {
	noon := window("12:00", "20:00")

	assert.Equal(t, times("20:30", "21:00"), DroppedSlots(noon, 2, 0))
	assert.Equal(t, times("19:30", "20:00"), DroppedSlots(noon, 0, -2))
	assert.Empty(t, DroppedSlots(noon, 0, 3))
	assert.Empty(t, DroppedSlots(nil, 3, -3))
}
