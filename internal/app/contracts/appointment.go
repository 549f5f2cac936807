package contracts

import (
	"context"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByParticipant(ctx context.Context, userID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	UpdatePaymentStatus(ctx context.Context, appointmentID, paymentStatus string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, error)
	FindAppointmentByID(ctx context.Context, request *requests.FindAppointmentByID) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}

// AppointmentDirectory is the read-only view the messaging core consumes
// for authorization. It never mutates appointments.
type AppointmentDirectory interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
