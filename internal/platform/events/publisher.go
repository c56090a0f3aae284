// Package events publishes document change events to the sync feed. Mobile
// clients consume the feed to know which collection to re-pull; losing an
// event only delays a sync until the next one, so publishing is best-effort.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
	"github.com/lsotoflores/expenses_tracker_backend/internal/utils/mapping"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher sends change events to a RabbitMQ fanout exchange. A nil
// Publisher is valid and drops everything, so the feed can stay unwired in
// tests and local setups without an AMQP broker.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher connects to the broker and declares the sync exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Fanout: every connected client gets every change signal.
	err = channel.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// PublishChange announces that a document changed in the given collection.
// Failures are logged and swallowed; the feed is advisory.
func (p *Publisher) PublishChange(ctx context.Context, collection portsrepo.Collection, docID string, action models.ChangeAction) {
	if p == nil {
		return
	}

	event := mapping.ToChangeEvent(collection, docID, action)
	body, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to marshal change event", "error", err, "collection", collection)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		string(collection), // routing key, informational under fanout
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"error", err,
			"collection", collection,
			"doc_id", docID)
		return
	}

	slog.DebugContext(ctx, "Published change event",
		"collection", collection,
		"doc_id", docID,
		"action", action)
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
