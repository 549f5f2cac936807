package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newconsult-service/internal/app/config"
	"newconsult-service/internal/app/delivery/http/controllers"
	"newconsult-service/internal/app/delivery/http/middlewares"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

type MockMessageUsecase struct {
	mock.Mock
}

func (m *MockMessageUsecase) SendMessage(ctx context.Context, request *requests.SendMessage) (*responses.Message, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Message), args.Error(1)
}

func (m *MockMessageUsecase) ListMessagesByAppointment(ctx context.Context, request *requests.ListMessagesByAppointment) ([]responses.Message, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Message), args.Error(1)
}

func (m *MockMessageUsecase) MarkMessagesRead(ctx context.Context, request *requests.MarkMessagesRead) (*responses.MarkMessagesRead, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MarkMessagesRead), args.Error(1)
}

func (m *MockMessageUsecase) GetUnreadCount(ctx context.Context, request *requests.GetUnreadCount) (*responses.UnreadCount, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UnreadCount), args.Error(1)
}

func TestMessageRouter(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testSecret,
			ExpTimeInHour: 1,
		},
	}

	mockSessionService := new(MockSessionService)
	mockMessageUsecase := new(MockMessageUsecase)

	messageController := controllers.NewMessageController(logger, mockMessageUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := chi.NewRouter()
	attachMessageRoutes(router, middlewareInstance, messageController)

	sessionData := `{"session_id":"session-1","user_id":"client-1","user_type":"client"}`
	token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
	assert.NoError(t, err)

	t.Run("SendMessage with a valid token", func(t *testing.T) {
		mockSessionService.On("GetSessionData", mock.Anything, "session-1").Return(sessionData, nil)
		mockMessageUsecase.On("SendMessage", mock.Anything, mock.AnythingOfType("*requests.SendMessage")).Return(&responses.Message{
			ID:            "message-1",
			AppointmentID: "appointment-1",
			Content:       "hello",
		}, nil)

		requestBody := requests.SendMessage{
			AppointmentID: "appointment-1",
			Content:       "hello",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockMessageUsecase.AssertCalled(t, "SendMessage", mock.Anything, mock.MatchedBy(func(r *requests.SendMessage) bool {
			return r.AppointmentID == "appointment-1" && r.SessionData == sessionData
		}))
	})

	t.Run("SendMessage without a token", func(t *testing.T) {
		requestBody := requests.SendMessage{
			AppointmentID: "appointment-1",
			Content:       "hello",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("SendMessage with a garbage token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("SendMessage with a validation error", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"appointment_id":"appointment-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "missing content must fail validation")
	})

	t.Run("GetUnreadCount with a valid token", func(t *testing.T) {
		mockMessageUsecase.On("GetUnreadCount", mock.Anything, mock.AnythingOfType("*requests.GetUnreadCount")).Return(&responses.UnreadCount{UnreadCount: 4}, nil)

		req := httptest.NewRequest("GET", "/unread-count", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"unread_count":4`)
	})

	t.Run("MarkMessagesRead via the path parameter", func(t *testing.T) {
		mockMessageUsecase.On("MarkMessagesRead", mock.Anything, mock.MatchedBy(func(r *requests.MarkMessagesRead) bool {
			return r.AppointmentID == "appointment-1"
		})).Return(&responses.MarkMessagesRead{MarkedCount: 2}, nil)

		req := httptest.NewRequest("POST", "/appointment-1/read", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"marked_count":2`)
	})
}
