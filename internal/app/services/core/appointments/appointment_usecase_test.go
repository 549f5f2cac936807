package appointments

import (
	"context"
	"testing"

	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdatePaymentStatus(ctx context.Context, appointmentID, paymentStatus string) error {
	args := m.Called(ctx, appointmentID, paymentStatus)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndUserType(ctx context.Context, email, userType string) (*models.User, error) {
	args := m.Called(ctx, email, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindCounselors(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestUsecase() (*appointmentUsecase, *MockAppointmentRepository, *MockUserRepository, *MockSessionService) {
	appointmentRepository := new(MockAppointmentRepository)
	userRepository := new(MockUserRepository)
	sessionService := new(MockSessionService)

	uc := &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		SessionService:        sessionService,
		Log:                   zap.NewNop(),
	}
	return uc, appointmentRepository, userRepository, sessionService
}

var _ contracts.AppointmentUsecase = (*appointmentUsecase)(nil)

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("books an appointment with a known counselor", func(t *testing.T) {
		uc, appointmentRepository, userRepository, sessionService := newTestUsecase()

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.UserTypeClient}, nil)
		userRepository.On("FindByID", mock.Anything, "counselor-1").Return(&models.User{ID: "counselor-1", UserType: constvars.UserTypeCounselor}, nil)
		appointmentRepository.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.ClientID == "client-1" &&
				a.CounselorID == "counselor-1" &&
				a.Status == constvars.AppointmentStatusScheduled &&
				a.PaymentStatus == constvars.PaymentStatusPending
		})).Return("appointment-1", nil)

		response, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			CounselorID: "counselor-1",
			Date:        "2026-09-10",
			Time:        "14:00",
			Duration:    60,
			SessionType: constvars.SessionTypeChat,
			Amount:      100,
			SessionData: "session-data",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.ID)
		assert.Equal(t, constvars.AppointmentStatusScheduled, response.Status)
	})

	t.Run("rejects booking with a client as counselor", func(t *testing.T) {
		uc, appointmentRepository, userRepository, sessionService := newTestUsecase()

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1"}, nil)
		userRepository.On("FindByID", mock.Anything, "client-2").Return(&models.User{ID: "client-2", UserType: constvars.UserTypeClient}, nil)

		_, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			CounselorID: "client-2",
			Date:        "2026-09-10",
			Time:        "14:00",
			Duration:    60,
			SessionType: constvars.SessionTypeChat,
			SessionData: "session-data",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		appointmentRepository.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_FindAppointmentByID(t *testing.T) {
	ctx := context.Background()

	appointment := &models.Appointment{
		ID:          "appointment-1",
		ClientID:    "client-1",
		CounselorID: "counselor-1",
	}

	t.Run("returns the appointment to a participant", func(t *testing.T) {
		uc, appointmentRepository, _, sessionService := newTestUsecase()

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "counselor-1"}, nil)
		appointmentRepository.On("FindByID", mock.Anything, "appointment-1").Return(appointment, nil)

		response, err := uc.FindAppointmentByID(ctx, &requests.FindAppointmentByID{
			AppointmentID: "appointment-1",
			SessionData:   "session-data",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.ID)
	})

	t.Run("rejects a non-participant", func(t *testing.T) {
		uc, appointmentRepository, _, sessionService := newTestUsecase()

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "intruder-1"}, nil)
		appointmentRepository.On("FindByID", mock.Anything, "appointment-1").Return(appointment, nil)

		_, err := uc.FindAppointmentByID(ctx, &requests.FindAppointmentByID{
			AppointmentID: "appointment-1",
			SessionData:   "session-data",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("reports an unknown appointment as not found", func(t *testing.T) {
		uc, appointmentRepository, _, sessionService := newTestUsecase()

		sessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1"}, nil)
		appointmentRepository.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.FindAppointmentByID(ctx, &requests.FindAppointmentByID{
			AppointmentID: "missing",
			SessionData:   "session-data",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
