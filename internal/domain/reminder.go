package domain

import "time"

// ReminderKind вид напоминания о записи
type ReminderKind int

const (
	ReminderH24 ReminderKind = iota + 1
	ReminderH2
	ReminderM30
)

// AllReminderKinds все виды напоминаний, от самого раннего
var AllReminderKinds = []ReminderKind{ReminderH24, ReminderH2, ReminderM30}

// Offset за сколько до начала приема отправляется напоминание
func (k ReminderKind) Offset() time.Duration {
	switch k {
	case ReminderH24:
		return 24 * time.Hour
	case ReminderH2:
		return 2 * time.Hour
	case ReminderM30:
		return 30 * time.Minute
	}
	return 0
}

// Column колонка в таблице bookings с отметкой об отправке
func (k ReminderKind) Column() string {
	switch k {
	case ReminderH24:
		return "reminder_24h_sent_at"
	case ReminderH2:
		return "reminder_2h_sent_at"
	case ReminderM30:
		return "reminder_30m_sent_at"
	}
	return ""
}

func (k ReminderKind) String() string {
	switch k {
	case ReminderH24:
		return "24h"
	case ReminderH2:
		return "2h"
	case ReminderM30:
		return "30m"
	}
	return "unknown"
}

// Valid проверяет, что вид известен
func (k ReminderKind) Valid() bool {
	return k.Column() != ""
}
