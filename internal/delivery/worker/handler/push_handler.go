package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const avatarFetchTimeout = 30 * time.Second

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for mail and media jobs
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	mailer         service.Mailer
	mediaStore     service.MediaStore
	userRepo       repository.UserRepository
	httpClient     *resty.Client
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Mailer     service.Mailer
	MediaStore service.MediaStore
	UserRepo   repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		mailer:         params.Mailer,
		mediaStore:     params.MediaStore,
		userRepo:       params.UserRepo,
		httpClient:     resty.New().SetTimeout(avatarFetchTimeout),
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse domain event
	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("type", string(event.Type)),
		slog.String("user_id", event.UserID),
	)

	// Process the event
	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed successfully",
		slog.String("type", string(event.Type)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches the event to the matching job
func (h *PushHandler) processEvent(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case service.EventUserRegistered:
		return h.sendConfirmationMail(ctx, event)
	case service.EventOrderPlaced:
		return h.sendOrderMail(ctx, event)
	case service.EventAvatarFetch:
		return h.fetchAvatar(ctx, event)
	default:
		// Unknown types are dropped; retrying would never succeed
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

// sendConfirmationMail mails the registration confirmation token
func (h *PushHandler) sendConfirmationMail(ctx context.Context, event *service.Event) error {
	if event.Email == "" || event.Token == "" {
		return errors.New("user.registered event is missing email or token")
	}

	mail := &service.Mail{
		To:      event.Email,
		Subject: "Confirm your registration",
		Body: fmt.Sprintf(
			"Hello %s,\n\nPlease confirm your registration with this token:\n\n%s\n",
			event.Name, event.Token,
		),
	}

	if err := h.mailer.Send(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// sendOrderMail mails the order confirmation notice. The event carries
// only the user id, so the recipient is resolved here.
func (h *PushHandler) sendOrderMail(ctx context.Context, event *service.Event) error {
	if event.OrderID == "" {
		return errors.New("order.placed event is missing order id")
	}

	to := event.Email
	name := event.Name
	if to == "" {
		if event.UserID == "" {
			return errors.New("order.placed event is missing email and user id")
		}

		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			return errors.WithStack(err)
		}

		user, err := h.userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// User was deleted between publish and delivery
				return errors.WithStack(err)
			}

			return newRetryableError(errors.WithStack(err))
		}

		to = user.Email
		name = user.FullName()
	}

	body := fmt.Sprintf("Hello %s,\n\nYour order %s has been placed.\n", name, event.OrderID)
	if event.Total != "" {
		body = fmt.Sprintf("%sOrder total: %s\n", body, event.Total)
	}

	mail := &service.Mail{
		To:      to,
		Subject: fmt.Sprintf("Order %s placed", event.OrderID),
		Body:    body,
	}

	if err := h.mailer.Send(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// fetchAvatar downloads the avatar image, stores it, and records the stored
// key on the user
func (h *PushHandler) fetchAvatar(ctx context.Context, event *service.Event) error {
	if event.UserID == "" || event.AvatarURL == "" {
		return errors.New("avatar.fetch event is missing user id or url")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := h.httpClient.R().SetContext(ctx).Get(event.AvatarURL)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if resp.IsError() {
		// The source rejected the URL; a retry would fetch the same status
		return errors.Errorf("avatar fetch from %s returned status %d", event.AvatarURL, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("avatars/%s", userID)
	storedKey, err := h.mediaStore.Save(ctx, key, contentType, resp.Body())
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// User was deleted between publish and delivery
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	user.AvatarPath = storedKey
	if err := h.userRepo.Update(ctx, user); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
