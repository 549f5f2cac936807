package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Phone     string `bson:"phone,omitempty"`
	UserType  string `bson:"userType"`

	// Counselor profile, empty for clients
	LicenseNumber  string `bson:"licenseNumber,omitempty"`
	Specialization string `bson:"specialization,omitempty"`
	Experience     int    `bson:"experience,omitempty"`
	Bio            string `bson:"bio,omitempty"`
	HourlyRate     int    `bson:"hourlyRate,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) IsCounselor() bool {
	return u.UserType == "counselor"
}
