package queue

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/perono/internal/logging"
	"github.com/dmitrijs2005/perono/internal/session"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type fakeChannel struct {
	LastExchange string
	LastKey      string
	LastMsg      amqp.Publishing
	HadDeadline  bool
	Err          error
	Closed       bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.LastExchange, f.LastKey, f.LastMsg = exchange, key, msg
	_, f.HadDeadline = ctx.Deadline()
	return f.Err
}

func (f *fakeChannel) Close() error {
	f.Closed = true
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	keys   []string
	events []TransitionEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	f.events = append(f.events, event.(TransitionEvent))
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "perono.session"}

	tr := session.Transition{From: session.ScreenAuth, To: session.ScreenOnboarding, Flags: session.Flags{IsLoggedIn: true}, At: at}
	require.NoError(t, p.Publish(context.Background(), RoutingKey(tr), NewTransitionEvent(tr)))

	assert.Equal(t, "perono.session", ch.LastExchange)
	assert.Equal(t, "session.screen.onboarding", ch.LastKey)
	assert.Equal(t, "application/json", ch.LastMsg.ContentType)
	assert.NotEmpty(t, ch.LastMsg.MessageId)
	assert.True(t, ch.HadDeadline)
	assert.JSONEq(t, `{
		"from": "auth",
		"to": "onboarding",
		"is_logged_in": true,
		"has_completed_onboarding": false,
		"at": "2025-03-14T09:26:53Z"
	}`, string(ch.LastMsg.Body))

	require.NoError(t, p.Close())
	assert.True(t, ch.Closed)
}

func TestRabbitPublisher_Errors(t *testing.T) {
	p := &RabbitPublisher{ch: &fakeChannel{Err: assert.AnError}, exchange: "x"}

	err := p.Publish(context.Background(), "k", map[string]string{"a": "b"})
	require.ErrorIs(t, err, assert.AnError)

	err = p.Publish(context.Background(), "k", func() {})
	var jerr *json.UnsupportedTypeError
	require.ErrorAs(t, err, &jerr)
}

func TestNoop(t *testing.T) {
	p := NewNoop()
	assert.NoError(t, p.Publish(context.Background(), "k", nil))
	assert.NoError(t, p.Close())
}

func TestForward(t *testing.T) {
	in := make(chan session.Transition, 3)
	in <- session.Transition{From: session.ScreenWelcome, To: session.ScreenAuth, At: at}
	in <- session.Transition{From: session.ScreenAuth, To: session.ScreenHome, Flags: session.Flags{IsLoggedIn: true, HasCompletedOnboarding: true}, At: at}
	close(in)

	pub := &fakePublisher{err: assert.AnError}
	Forward(context.Background(), in, pub, logging.NewNop())

	assert.Equal(t, []string{"session.screen.auth", "session.screen.home"}, pub.keys)
	assert.True(t, pub.events[1].IsLoggedIn)
	assert.Equal(t, "home", pub.events[1].To)
}

func TestForward_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Forward(ctx, make(chan session.Transition), &fakePublisher{}, logging.NewNop())
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Forward did not return after cancel")
	}
}

func TestForward_FromController(t *testing.T) {
	ctrl := session.NewController(session.Flags{}, nil, nil, &session.MemoryFlagStore{})
	sub, cancel := ctrl.Subscribe()

	pub := &fakePublisher{}
	done := make(chan struct{})
	go func() {
		Forward(context.Background(), sub, pub, logging.NewNop())
		close(done)
	}()

	require.True(t, ctrl.OpenAuth(context.Background()))
	require.True(t, ctrl.CloseAuth(context.Background()))
	cancel()
	<-done

	assert.Equal(t, []string{"session.screen.auth", "session.screen.welcome"}, pub.keys)
}
