package domain

// Параметры генерации слотов
const (
	SlotStepMinutes = 30
	MinExtraSlots   = -10
	MaxExtraSlots   = 10
)

// Ограничения
const (
	MaxScopeDays       = 366 // максимум дат в одной операции SetExtraSlots
	ShortCodeLength    = 8
	MaxCustomerNameLen = 100
	MaxServiceLen      = 100
	MaxBlockReasonLen  = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
