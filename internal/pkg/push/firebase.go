package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// Client sends push notifications through Firebase Cloud Messaging.
// With no credentials configured it becomes a no-op sender.
type Client struct {
	messaging *messaging.Client
}

// NewClient creates an FCM client from configuration
func NewClient(ctx context.Context, cfg models.FirebaseConfig) (*Client, error) {
	if cfg.CredentialsFile == "" {
		logger.Warn("Firebase credentials not configured, push notifications disabled")
		return &Client{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging: %w", err)
	}

	return &Client{messaging: mc}, nil
}

// Send delivers a push notification to a single device token.
// Delivery failures are logged, not returned: push is best effort.
func (c *Client) Send(ctx context.Context, token, title, body string, data map[string]string) {
	if c.messaging == nil || token == "" {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := c.messaging.Send(ctx, msg); err != nil {
		logger.Warn("Failed to send push notification",
			logger.String("title", title),
			logger.Err(err))
	}
}
