package utils

import (
	"fmt"
	"newconsult-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.New().String())
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateConnectionID() string {
	return uuid.New().String()
}

func GenerateTransactionID() string {
	return fmt.Sprintf("TXN_%s", uuid.New().String())
}

func GenerateAttachmentObjectName(appointmentID, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("attachments/%s/%s_%s", appointmentID, timestamp, fileName)
}
