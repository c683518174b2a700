package service

import (
	"context"
)

// EventType discriminates the payload of a domain event.
type EventType string

const (
	// EventUserRegistered is emitted after a successful registration; the
	// worker mails the confirmation token.
	EventUserRegistered EventType = "user.registered"
	// EventOrderPlaced is emitted when a basket transitions to a placed
	// order; the worker mails the status notice.
	EventOrderPlaced EventType = "order.placed"
	// EventAvatarFetch is emitted when a user supplies an avatar URL; the
	// worker downloads the image and stores it.
	EventAvatarFetch EventType = "avatar.fetch"
)

// Event is the envelope published to the queue. Only the fields relevant to
// the event's type are set; consumers switch on Type.
type Event struct {
	Type      EventType `json:"type"`
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing

	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Token     string `json:"token,omitempty"`      // Confirmation token for user.registered.
	OrderID   string `json:"order_id,omitempty"`   // For order.placed.
	Total     string `json:"total,omitempty"`      // Formatted order total for order.placed.
	AvatarURL string `json:"avatar_url,omitempty"` // Source URL for avatar.fetch.
}

// EventPublisher defines the interface for publishing events to a message
// queue. The core's contract is "event is enqueued", not "event is
// delivered"; retries belong to the queue runner.
type EventPublisher interface {
	// Publish enqueues a domain event for async processing.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
