package domain

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// GenerateSlots строит сетку начала приемов с шагом SlotStepMinutes
//
// Точки идут от window.From включительно до window.To включительно.
// extra > 0 добавляет слоты после последнего, extra < 0 убирает слоты с конца.
// Для выходного (window == nil) результат пустой при любом extra.
// Сетка не переходит через полночь.
func GenerateSlots(window *Window, extra int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if window == nil {
		return slots
	}

	from, to := window.From.Minutes(), window.To.Minutes()
	if from < 0 || to < 0 {
		return slots
	}

	for m := from; m <= to; m += SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		return slots
	}

	switch {
	case extra > 0:
		last := slots[len(slots)-1]
		for i := 0; i < extra; i++ {
			next, err := last.AddMinutes(SlotStepMinutes)
			if err != nil {
				break
			}
			slots = append(slots, next)
			last = next
		}
	case extra < 0:
		drop := -extra
		if drop >= len(slots) {
			return slots[:0]
		}
		slots = slots[:len(slots)-drop]
	}

	return slots
}

// DroppedSlots возвращает слоты, которые исчезнут при смене extra с oldExtra на newExtra
func DroppedSlots(window *Window, oldExtra, newExtra int) []types.TimeString {
	next := make(map[types.TimeString]struct{})
	for _, slot := range GenerateSlots(window, newExtra) {
		next[slot] = struct{}{}
	}

	dropped := make([]types.TimeString, 0)
	for _, slot := range GenerateSlots(window, oldExtra) {
		if _, ok := next[slot]; !ok {
			dropped = append(dropped, slot)
		}
	}
	return dropped
}

// ContainsSlot проверяет, что время входит в сетку
func ContainsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
