package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/exceptions"
	"newconsult-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// paymentUsecase simulates a payment gateway: it marks the appointment
// paid and hands back a generated transaction reference. No real charge
// happens anywhere.
type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			AppointmentRepository: appointmentRepository,
			SessionService:        sessionService,
			Log:                   logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) ProcessPayment(ctx context.Context, request *requests.ProcessPayment) (*responses.Payment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if !appointment.IsParticipant(session.UserID) {
		return nil, exceptions.ErrNotAppointmentParticipant(nil)
	}

	if err := uc.AppointmentRepository.UpdatePaymentStatus(ctx, request.AppointmentID, constvars.PaymentStatusCompleted); err != nil {
		return nil, err
	}

	transactionID := utils.GenerateTransactionID()
	uc.Log.Info("mock payment processed",
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String("transaction_id", transactionID),
		zap.Int("amount", request.Amount),
	)

	return &responses.Payment{
		ID:            fmt.Sprintf("PAY_%s", request.AppointmentID),
		AppointmentID: request.AppointmentID,
		Amount:        request.Amount,
		Status:        constvars.PaymentStatusCompleted,
		TransactionID: transactionID,
		Timestamp:     time.Now().Format(time.RFC3339),
	}, nil
}

func (uc *paymentUsecase) ListPayments(ctx context.Context, request *requests.ListPayments) ([]responses.Payment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByParticipant(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	payments := make([]responses.Payment, 0)
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.PaymentStatus != constvars.PaymentStatusCompleted {
			continue
		}
		payments = append(payments, responses.Payment{
			ID:            fmt.Sprintf("PAY_%s", appointment.ID),
			AppointmentID: appointment.ID,
			Amount:        appointment.Amount,
			Status:        appointment.PaymentStatus,
			TransactionID: fmt.Sprintf("TXN_%s", appointment.ID),
			Timestamp:     appointment.UpdatedAt.Format(time.RFC3339),
		})
	}
	return payments, nil
}
