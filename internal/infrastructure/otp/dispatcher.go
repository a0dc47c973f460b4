package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// LogDispatcher writes messages to the log instead of sending them.
type LogDispatcher struct {
	logger logger.Logger
}

// NewLogDispatcher creates a LogDispatcher
func NewLogDispatcher(logger logger.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Dispatch logs the message
func (d *LogDispatcher) Dispatch(_ context.Context, msg *auth.SMSMessage) error {
	d.logger.Info("SMS to ", msg.To, " (", msg.Feature, "): ", msg.Body)
	return nil
}

// flushTimeout bounds the wait for the server to acknowledge a publish.
const flushTimeout = 5 * time.Second

// NatsDispatcher publishes messages as JSON to a subject consumed by the SMS gateway.
type NatsDispatcher struct {
	conn    *nats.Conn
	subject string
	logger  logger.Logger
}

// NewNatsDispatcher connects to url and publishes to subject
func NewNatsDispatcher(url, subject string, logger logger.Logger) (*NatsDispatcher, error) {
	conn, err := nats.Connect(url,
		nats.Name("admin-portal"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	logger.Info("Connected to NATS at ", url)
	return &NatsDispatcher{conn: conn, subject: subject, logger: logger}, nil
}

// Dispatch publishes the message and flushes so delivery errors surface to the caller
func (d *NatsDispatcher) Dispatch(ctx context.Context, msg *auth.SMSMessage) error {
	if d.conn == nil || !d.conn.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode sms message: %w", err)
	}
	if err := d.conn.Publish(d.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", d.subject, err)
	}
	// FlushWithContext refuses contexts without a deadline
	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := d.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush to %s: %w", d.subject, err)
	}

	d.logger.Info("Published SMS for ", msg.PhoneNo, " to ", d.subject)
	return nil
}

// Close drains the connection
func (d *NatsDispatcher) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Drain()
}
