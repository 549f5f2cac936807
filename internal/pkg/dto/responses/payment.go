package responses

type Payment struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	Amount        int    `json:"amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"`
}
