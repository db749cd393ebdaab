package blocked_phones

// BlockPhoneRequest HTTP request model
type BlockPhoneRequest struct {
	Phone  string  `json:"phone"`
	Reason *string `json:"reason,omitempty"`
}
