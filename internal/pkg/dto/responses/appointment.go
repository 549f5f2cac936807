package responses

type Appointment struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	CounselorID   string `json:"counselor_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	SessionType   string `json:"session_type"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	Amount        int    `json:"amount"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     string `json:"created_at"`
}
