package requests

type CreateAppointment struct {
	CounselorID string `json:"counselor_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	SessionType string `json:"session_type" validate:"required,oneof=chat video in-person"`
	Notes       string `json:"notes,omitempty"`
	Amount      int    `json:"amount" validate:"gte=0"`
	SessionData string
}

type ListAppointments struct {
	SessionData string
}

type FindAppointmentByID struct {
	AppointmentID string
	SessionData   string
}

type UpdateAppointmentStatus struct {
	Status        string `json:"status" validate:"required,oneof=scheduled confirmed in-progress completed cancelled"`
	AppointmentID string
	SessionData   string
}
