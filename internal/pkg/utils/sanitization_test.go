package utils

import (
	"newconsult-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Register{
			Email:     "  JANE@EXAMPLE.COM  ",
			FirstName: "Jane",
			LastName:  "Doe",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Name and Profile Fields Trimmed", func(t *testing.T) {
		request := &requests.Register{
			Email:          "jane@example.com",
			FirstName:      "  Jane  ",
			LastName:       "  Doe  ",
			Phone:          "  +6281234567  ",
			Specialization: "  Anxiety  ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "Jane", request.FirstName)
		assert.Equal(t, "Doe", request.LastName)
		assert.Equal(t, "+6281234567", request.Phone)
		assert.Equal(t, "Anxiety", request.Specialization)
	})
}

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{
		Email:    "  JANE@EXAMPLE.COM ",
		Password: "secret",
	}

	SanitizeLoginRequest(request)

	assert.Equal(t, "jane@example.com", request.Email)
	assert.Equal(t, "secret", request.Password, "password must not be altered")
}

func TestSanitizeSendMessageRequest(t *testing.T) {
	t.Run("Content Trimmed", func(t *testing.T) {
		request := &requests.SendMessage{
			AppointmentID: "appointment-1",
			Content:       "  hello there  ",
		}

		SanitizeSendMessageRequest(request)

		assert.Equal(t, "hello there", request.Content)
	})

	t.Run("Message Type Defaults To Text", func(t *testing.T) {
		request := &requests.SendMessage{
			AppointmentID: "appointment-1",
			Content:       "hello",
		}

		SanitizeSendMessageRequest(request)

		assert.Equal(t, "text", request.MessageType)
	})

	t.Run("Explicit Message Type Kept", func(t *testing.T) {
		request := &requests.SendMessage{
			AppointmentID: "appointment-1",
			Content:       "hello",
			MessageType:   "text",
		}

		SanitizeSendMessageRequest(request)

		assert.Equal(t, "text", request.MessageType)
	})
}
