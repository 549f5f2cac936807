package contracts

import (
	"context"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, request *requests.ProcessPayment) (*responses.Payment, error)
	ListPayments(ctx context.Context, request *requests.ListPayments) ([]responses.Payment, error)
}
