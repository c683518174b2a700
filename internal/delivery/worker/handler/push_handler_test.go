package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler    *PushHandler
	mailer     *mockSvc.MockMailer
	mediaStore *mockSvc.MockMediaStore
	userRepo   *mockRepo.MockUserRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	mailer := mockSvc.NewMockMailer(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	handler := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer:     mailer,
		MediaStore: mediaStore,
		UserRepo:   userRepo,
	})

	return pushHandlerFixtures{
		handler:    handler,
		mailer:     mailer,
		mediaStore: mediaStore,
		userRepo:   userRepo,
	}
}

func pushRequest(t *testing.T, event *service.Event) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_UserRegistered_SendsConfirmationMail(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		Run(func(_ context.Context, mail *service.Mail) {
			assert.Equal(t, "buyer@example.com", mail.To)
			assert.Contains(t, mail.Body, "sometoken")
		}).
		Return(nil)

	c, rec := pushRequest(t, &service.Event{
		Type:  service.EventUserRegistered,
		Email: "buyer@example.com",
		Name:  "Test Buyer",
		Token: "sometoken",
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_OrderPlaced_ResolvesRecipient(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{
			ID:        userID,
			Email:     "buyer@example.com",
			FirstName: "Test",
			LastName:  "Buyer",
		}, nil)

	fx.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		Run(func(_ context.Context, mail *service.Mail) {
			assert.Equal(t, "buyer@example.com", mail.To)
			assert.Contains(t, mail.Body, "Test Buyer")
			assert.Contains(t, mail.Body, "1234.50")
		}).
		Return(nil)

	// The order service publishes only ids and the total; no email rides
	// along on the event.
	c, rec := pushRequest(t, &service.Event{
		Type:    service.EventOrderPlaced,
		UserID:  userID.String(),
		OrderID: uuid.NewString(),
		Total:   "1234.50",
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_OrderPlaced_LookupFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, errors.New("connection reset"))

	c, rec := pushRequest(t, &service.Event{
		Type:    service.EventOrderPlaced,
		UserID:  userID.String(),
		OrderID: uuid.NewString(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_OrderPlaced_MissingRecipientIsDropped(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.Event{
		Type:    service.EventOrderPlaced,
		OrderID: uuid.NewString(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MailFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp connection refused"))

	c, rec := pushRequest(t, &service.Event{
		Type:    service.EventOrderPlaced,
		Email:   "buyer@example.com",
		OrderID: "f2a7e0cb-0000-0000-0000-000000000000",
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownEventTypeIsDropped(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.Event{Type: "user.deleted"})

	require.NoError(t, fx.handler.HandlePush(c))
	// 200 so the queue does not redeliver an event nobody can handle
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_IncompleteEventIsDropped(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.Event{Type: service.EventUserRegistered})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedBase64(t *testing.T) {
	fx := createTestPushHandler(t)

	e := echo.New()
	body := `{"message":{"data":"%%%not-base64%%%","messageId":"1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
