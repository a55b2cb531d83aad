// Package event publishes ordering domain events to Kafka. Publishing is
// best effort: callers log failures and continue, the customer-facing flow
// never blocks on the broker.
package event

import (
	"context"
	"log/slog"

	"github.com/bellavista/ordering/pkg/kafka"
	"github.com/bellavista/ordering/pkg/logger"

	"github.com/bellavista/ordering/internal/domain"
)

const source = "ordering-service"

// Kafka topics for ordering events.
const (
	TopicCartUpdated          = "bellavista.cart.updated"
	TopicCartCleared          = "bellavista.cart.cleared"
	TopicOrderCompleted       = "bellavista.order.completed"
	TopicReservationRequested = "bellavista.reservation.requested"
	TopicNewsletterSubscribed = "bellavista.newsletter.subscribed"
)

// Event types.
const (
	TypeCartUpdated          = "cart.updated"
	TypeCartCleared          = "cart.cleared"
	TypeOrderCompleted       = "order.completed"
	TypeReservationRequested = "reservation.requested"
	TypeNewsletterSubscribed = "newsletter.subscribed"
)

// Publisher abstracts the Kafka producer for testing.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// Producer publishes ordering events.
type Producer struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewProducer creates an event producer on top of a Kafka publisher.
func NewProducer(publisher Publisher, log *slog.Logger) *Producer {
	return &Producer{
		publisher: publisher,
		logger:    log,
	}
}

// CartUpdatedData is the payload for cart.updated events.
type CartUpdatedData struct {
	SessionID string   `json:"session_id"`
	ItemCount int      `json:"item_count"`
	Subtotal  int64    `json:"subtotal"`
	ItemIDs   []string `json:"item_ids"`
}

// PublishCartUpdated publishes a cart.updated event after any mutation.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	itemIDs := make([]string, len(cart.Items))
	for i, item := range cart.Items {
		itemIDs[i] = item.ID
	}

	data := CartUpdatedData{
		SessionID: cart.SessionID,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		ItemIDs:   itemIDs,
	}

	return p.publish(ctx, TopicCartUpdated, TypeCartUpdated, cart.SessionID, "cart", data)
}

// CartClearedData is the payload for cart.cleared events.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	data := CartClearedData{SessionID: sessionID}
	return p.publish(ctx, TopicCartCleared, TypeCartCleared, sessionID, "cart", data)
}

// PublishOrderCompleted publishes an order.completed event when a simulated
// checkout succeeds.
func (p *Producer) PublishOrderCompleted(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, TopicOrderCompleted, TypeOrderCompleted, order.Number, "order", order)
}

// PublishReservationRequested publishes a reservation.requested event.
func (p *Producer) PublishReservationRequested(ctx context.Context, res *domain.Reservation) error {
	return p.publish(ctx, TopicReservationRequested, TypeReservationRequested, res.ConfirmationCode, "reservation", res)
}

// PublishNewsletterSubscribed publishes a newsletter.subscribed event.
func (p *Producer) PublishNewsletterSubscribed(ctx context.Context, sub *domain.Subscription) error {
	return p.publish(ctx, TopicNewsletterSubscribed, TypeNewsletterSubscribed, sub.ID, "subscription", sub)
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, data any) error {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, data)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
		return err
	}

	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		evt.WithCorrelationID(correlationID)
	}

	return p.publisher.Publish(ctx, topic, evt)
}
