package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/perono/internal/logging"
)

// subscriberBuffer is the capacity of each Subscribe channel. Transitions
// that do not fit are dropped for that subscriber.
const subscriberBuffer = 16

// Transition is emitted every time the current screen changes.
type Transition struct {
	From  Screen
	To    Screen
	Flags Flags
	At    time.Time
}

// Controller translates provider outcomes and user actions into Flags
// mutations and screen transitions.
type Controller struct {
	identity IdentityGateway
	profiles ProfileStore
	store    FlagStore
	logger   logging.Logger
	recorder Recorder
	now      func() time.Time

	// attempt is a one-slot semaphore for sign-in/sign-up.
	attempt chan struct{}

	// persist orders flag saves; it is taken before mu and held across
	// Save, so readers of mu never wait on the store.
	persist sync.Mutex

	mu       sync.Mutex
	flags    Flags
	authOpen bool
	subs     map[int]chan Transition
	nextSub  int
}

// Option customises a Controller.
type Option func(*Controller)

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithClock overrides the time source used for profile CreatedAt and
// transition timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds a controller starting from flags, typically the
// value returned by FlagStore.Load.
func NewController(flags Flags, identity IdentityGateway, profiles ProfileStore, store FlagStore, opts ...Option) *Controller {
	c := &Controller{
		identity: identity,
		profiles: profiles,
		store:    store,
		logger:   logging.NewNop(),
		recorder: nopRecorder{},
		now:      time.Now,
		attempt:  make(chan struct{}, 1),
		flags:    flags,
		subs:     make(map[int]chan Transition),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// LoadController reads the persisted flags from store and builds a
// controller around them.
func LoadController(ctx context.Context, identity IdentityGateway, profiles ProfileStore, store FlagStore, opts ...Option) (*Controller, error) {
	flags, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session flags: %w", err)
	}
	return NewController(flags, identity, profiles, store, opts...), nil
}

// SignIn authenticates an existing account. On success the user is logged
// in and onboarding is marked complete unconditionally, so the gate moves
// to Home. On provider failure the flags are left untouched and an
// *AuthError is returned.
func (c *Controller) SignIn(ctx context.Context, cr Credentials) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if !c.accepts(EventSignedIn) {
		return ErrAlreadyLoggedIn
	}

	userID, err := c.identity.SignIn(ctx, cr.Email, cr.Password)
	c.recorder.AuthAttempt(OpSignIn, err == nil)
	if err != nil {
		c.logger.Info(ctx, "sign in rejected", "email", cr.Email, "error", err)
		return newAuthError(OpSignIn, err)
	}

	c.logger.Info(ctx, "signed in", "user_id", userID)
	c.apply(ctx, EventSignedIn)
	return nil
}

// SignUp creates an account, writes its profile and moves the gate to
// Onboarding. A failed profile write is logged and does not stop the flow.
// On provider failure the flags are left untouched and an *AuthError is
// returned.
func (c *Controller) SignUp(ctx context.Context, cr Credentials) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if !c.accepts(EventSignedUp) {
		return ErrAlreadyLoggedIn
	}

	userID, err := c.identity.SignUp(ctx, cr.Email, cr.Password)
	c.recorder.AuthAttempt(OpSignUp, err == nil)
	if err != nil {
		c.logger.Info(ctx, "sign up rejected", "email", cr.Email, "error", err)
		return newAuthError(OpSignUp, err)
	}

	profile := UserProfile{UserID: userID, Email: cr.Email, CreatedAt: c.now().UTC()}
	if err := c.profiles.Create(ctx, profile); err != nil {
		serr := &StoreError{UserID: userID, Err: err}
		c.recorder.ProfileWrite(false)
		c.logger.Warn(ctx, "profile write failed", "user_id", userID, "error", serr)
	} else {
		c.recorder.ProfileWrite(true)
		c.logger.Debug(ctx, "profile written", "user_id", userID)
	}

	c.logger.Info(ctx, "signed up", "user_id", userID)
	c.apply(ctx, EventSignedUp)
	return nil
}

// CompleteOnboarding marks onboarding as done. Calling it again is a no-op.
func (c *Controller) CompleteOnboarding(ctx context.Context) {
	c.apply(ctx, EventOnboardingCompleted)
}

// LogOut clears the logged-in flag. HasCompletedOnboarding is kept.
func (c *Controller) LogOut(ctx context.Context) {
	c.apply(ctx, EventLoggedOut)
}

// OpenAuth navigates from Welcome to Auth. It reports false when the gate
// is not on Welcome.
func (c *Controller) OpenAuth(ctx context.Context) bool {
	return c.navigate(ctx, true)
}

// CloseAuth navigates from Auth back to Welcome. It reports false when the
// gate is not on Auth.
func (c *Controller) CloseAuth(ctx context.Context) bool {
	return c.navigate(ctx, false)
}

// CurrentScreen returns the active screen.
func (c *Controller) CurrentScreen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screenLocked()
}

// Flags returns a snapshot of the session flags.
func (c *Controller) Flags() Flags {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags
}

// State returns the gate state.
func (c *Controller) State() State {
	return StateOf(c.Flags())
}

// Subscribe registers for screen transitions. The returned cancel func
// unregisters and closes the channel; it is safe to call more than once.
func (c *Controller) Subscribe() (<-chan Transition, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan Transition, subscriberBuffer)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (c *Controller) begin() error {
	select {
	case c.attempt <- struct{}{}:
		return nil
	default:
		return ErrAttemptInProgress
	}
}

func (c *Controller) end() {
	<-c.attempt
}

func (c *Controller) accepts(e Event) bool {
	_, ok := Next(c.State(), e)
	return ok
}

// apply mutates the flags for event e, notifies subscribers if the screen
// changed and then persists the flags.
func (c *Controller) apply(ctx context.Context, e Event) {
	c.persist.Lock()
	defer c.persist.Unlock()

	c.mu.Lock()
	from := c.screenLocked()
	prev := c.flags
	next := prev.Apply(e)

	if to, ok := Next(StateOf(prev), e); ok {
		c.logger.Debug(ctx, "state transition", "event", e, "from", StateOf(prev), "to", to)
	}

	c.flags = next
	if e == EventLoggedOut || next.IsLoggedIn {
		c.authOpen = false
	}
	c.notifyLocked(ctx, from)
	c.mu.Unlock()

	if next == prev {
		return
	}
	if err := c.store.Save(ctx, next); err != nil {
		c.logger.Warn(ctx, "session flags not persisted", "event", e, "error", err)
	}
}

func (c *Controller) navigate(ctx context.Context, open bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.screenLocked()
	want := ScreenAuth
	if open {
		want = ScreenWelcome
	}
	if from != want {
		return false
	}

	c.authOpen = open
	c.notifyLocked(ctx, from)
	return true
}

func (c *Controller) screenLocked() Screen {
	s := ScreenFor(c.flags)
	if s == ScreenWelcome && c.authOpen {
		return ScreenAuth
	}
	return s
}

func (c *Controller) notifyLocked(ctx context.Context, from Screen) {
	to := c.screenLocked()
	if to == from {
		return
	}

	c.recorder.ScreenTransition(to)
	c.logger.Info(ctx, "screen changed", "from", from, "to", to)

	tr := Transition{From: from, To: to, Flags: c.flags, At: c.now().UTC()}
	for id, ch := range c.subs {
		select {
		case ch <- tr:
		default:
			c.logger.Warn(ctx, "transition dropped, subscriber is full", "subscriber", id, "to", to)
		}
	}
}
