package models

type Appointment struct {
	ID            string `bson:"_id,omitempty"`
	ClientID      string `bson:"clientId"`
	CounselorID   string `bson:"counselorId"`
	Date          string `bson:"date"`
	Time          string `bson:"time"`
	Duration      int    `bson:"duration"`
	SessionType   string `bson:"sessionType"`
	Status        string `bson:"status"`
	Notes         string `bson:"notes,omitempty"`
	Amount        int    `bson:"amount"`
	PaymentStatus string `bson:"paymentStatus"`

	TimeModel `bson:",inline"`
}

// IsParticipant reports whether userID is one of the two fixed
// participants of the appointment.
func (a *Appointment) IsParticipant(userID string) bool {
	return a.ClientID == userID || a.CounselorID == userID
}

// OtherParticipant returns the participant on the opposite side of
// userID. The caller must already be a participant.
func (a *Appointment) OtherParticipant(userID string) string {
	if a.ClientID == userID {
		return a.CounselorID
	}
	return a.ClientID
}
