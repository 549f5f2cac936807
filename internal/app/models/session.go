package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	UserType  string    `json:"user_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsNotCounselor() bool {
	return s.UserType != "counselor"
}

func (s *Session) IsNotClient() bool {
	return s.UserType != "client"
}
