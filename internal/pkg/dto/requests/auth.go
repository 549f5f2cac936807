package requests

type Register struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"password"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"user_type" validate:"required,user_type"`

	// Counselor profile, ignored for clients
	LicenseNumber  string `json:"license_number,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Experience     int    `json:"experience,omitempty"`
	Bio            string `json:"bio,omitempty"`
	HourlyRate     int    `json:"hourly_rate,omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"user_type" validate:"required,user_type"`
}

type Logout struct {
	SessionData string
}

type GetProfile struct {
	SessionData string
}
