package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gametable/config"
	deliverycontext "gametable/internal/delivery/context"
	"gametable/internal/domain/constants"
	"gametable/internal/domain/entity"
	"gametable/internal/domain/service"
	"gametable/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

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

// fanoutEvent mirrors the publisher-side event payload
type fanoutEvent struct {
	RequestID    string          `json:"request_id,omitempty"`
	ServerID     string          `json:"server_id,omitempty"`
	Category     string          `json:"category"`
	Title        string          `json:"title"`
	RecipientIDs []string        `json:"recipient_ids"`
	Payload      json.RawMessage `json:"payload"`
}

// PushHandler handles Pub/Sub push messages carrying fan-out events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
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
		notificationUC: params.NotificationUC,
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

	// Parse fan-out event
	var event fanoutEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse fan-out event", slog.Any("error", err))

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

	reqLogger.Info("[Worker] Processing fan-out event",
		slog.String("category", event.Category),
		slog.String("server_id", event.ServerID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	// Process the fan-out; delivery trouble is absorbed by the gateway, so
	// a returned error means the event itself is malformed. Acknowledge it
	// with 200 to prevent infinite retries of an unprocessable message.
	if err := h.processFanout(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process fan-out event",
			slog.String("category", event.Category),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Fan-out event processed successfully",
		slog.String("category", event.Category),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *fanoutEvent) string {
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

// processFanout parses the event and hands it to the notification gateway
func (h *PushHandler) processFanout(ctx context.Context, event *fanoutEvent) error {
	recipientIDs := make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, idStr := range event.RecipientIDs {
		id, parseErr := uuid.Parse(idStr)
		if parseErr == nil {
			recipientIDs = append(recipientIDs, id)
		}
	}

	if len(recipientIDs) == 0 {
		h.logger.Info("[Worker] No recipients to notify",
			slog.String("category", event.Category),
		)

		return nil
	}

	var serverIDHint *uuid.UUID
	if event.ServerID != "" {
		if serverID, parseErr := uuid.Parse(event.ServerID); parseErr == nil {
			serverIDHint = &serverID
		}
	}

	var payload *service.FanoutPayload
	if len(event.Payload) > 0 {
		payload = &service.FanoutPayload{}
		if err := json.Unmarshal(event.Payload, payload); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(h.notificationUC.NotifyMany(
		ctx,
		recipientIDs,
		entity.NotificationCategory(event.Category),
		event.Title,
		payload,
		serverIDHint,
	))
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
