package utils

import (
	"newconsult-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Specialization = strings.TrimSpace(request.Specialization)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeSendMessageRequest(request *requests.SendMessage) {
	request.Content = strings.TrimSpace(request.Content)
	if request.MessageType == "" {
		request.MessageType = "text"
	}
}
