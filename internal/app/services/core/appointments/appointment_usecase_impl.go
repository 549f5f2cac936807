package appointments

import (
	"context"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			UserRepository:        userRepository,
			SessionService:        sessionService,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	counselor, err := uc.UserRepository.FindByID(ctx, request.CounselorID)
	if err != nil {
		return nil, err
	}
	if counselor == nil || !counselor.IsCounselor() {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCounselorNotFound, constvars.ErrDevUserNotExists)
	}

	now := time.Now()
	appointment := &models.Appointment{
		ClientID:      session.UserID,
		CounselorID:   request.CounselorID,
		Date:          request.Date,
		Time:          request.Time,
		Duration:      request.Duration,
		SessionType:   request.SessionType,
		Status:        constvars.AppointmentStatusScheduled,
		Notes:         request.Notes,
		Amount:        request.Amount,
		PaymentStatus: constvars.PaymentStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	return mapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByParticipant(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *mapAppointmentToResponse(&appointments[i]))
	}
	return response, nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, request *requests.FindAppointmentByID) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findAuthorizedAppointment(ctx, request.AppointmentID, session.UserID)
	if err != nil {
		return nil, err
	}
	return mapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findAuthorizedAppointment(ctx, request.AppointmentID, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, request.AppointmentID, request.Status); err != nil {
		return nil, err
	}
	appointment.Status = request.Status

	uc.Log.Info("appointment status updated",
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String("status", request.Status),
	)
	return mapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) findAuthorizedAppointment(ctx context.Context, appointmentID, userID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if !appointment.IsParticipant(userID) {
		return nil, exceptions.ErrNotAppointmentParticipant(nil)
	}
	return appointment, nil
}

func mapAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:            appointment.ID,
		ClientID:      appointment.ClientID,
		CounselorID:   appointment.CounselorID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Duration:      appointment.Duration,
		SessionType:   appointment.SessionType,
		Status:        appointment.Status,
		Notes:         appointment.Notes,
		Amount:        appointment.Amount,
		PaymentStatus: appointment.PaymentStatus,
		CreatedAt:     appointment.CreatedAt.Format(time.RFC3339),
	}
}
