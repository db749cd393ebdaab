package domain

import "time"

// PhonePolicy глобальная настройка ограничений по телефону
type PhonePolicy struct {
	// LimitOnePerDayPerPhone не больше одной активной записи на номер в день
	LimitOnePerDayPerPhone bool
	UpdatedAt              time.Time
}

// BlockedPhone номер, которому запрещено создавать записи
type BlockedPhone struct {
	Phone     string
	Reason    *string
	CreatedAt time.Time
}
