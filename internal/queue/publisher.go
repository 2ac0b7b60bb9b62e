// Package queue publishes session screen transitions to a message broker.
package queue

import (
	"context"
	"time"

	"github.com/dmitrijs2005/perono/internal/session"
)

// Publisher sends JSON events under a routing key.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type NoopPublisher struct{}

func NewNoop() Publisher { return NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// TransitionEvent is the wire form of a session.Transition.
type TransitionEvent struct {
	From                   string    `json:"from"`
	To                     string    `json:"to"`
	IsLoggedIn             bool      `json:"is_logged_in"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	At                     time.Time `json:"at"`
}

func NewTransitionEvent(tr session.Transition) TransitionEvent {
	return TransitionEvent{
		From:                   string(tr.From),
		To:                     string(tr.To),
		IsLoggedIn:             tr.Flags.IsLoggedIn,
		HasCompletedOnboarding: tr.Flags.HasCompletedOnboarding,
		At:                     tr.At,
	}
}

// RoutingKey is "session.screen.<to>".
func RoutingKey(tr session.Transition) string {
	return "session.screen." + string(tr.To)
}
