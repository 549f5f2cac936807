package requests

type ProcessPayment struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	Amount        int    `json:"amount" validate:"required,gt=0"`
	SessionData   string
}

type ListPayments struct {
	SessionData string
}
