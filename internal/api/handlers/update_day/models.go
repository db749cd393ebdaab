package update_day

// SetDayBlockedRequest HTTP request model
type SetDayBlockedRequest struct {
	Blocked *bool `json:"blocked"`
}

// ToggleBlockedTimeRequest HTTP request model
type ToggleBlockedTimeRequest struct {
	Time string `json:"time"` // "14:30"
}
