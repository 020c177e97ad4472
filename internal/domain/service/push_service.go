// Package service defines the outbound infrastructure interfaces consumed by
// the use case layer.
package service

import (
	"context"
)

// PushService defines the interface for push notification delivery providers.
type PushService interface {
	// SendBatchNotification sends push notifications to multiple destination tokens.
	// Returns success count, failure count, the tokens the provider reported
	// as permanently invalid (unregistered), and error.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single destination token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
