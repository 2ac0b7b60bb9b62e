package session

import (
	"context"
	"time"
)

// Credentials are held only for the duration of one attempt.
type Credentials struct {
	Email    string
	Password string
}

// UserProfile is the record written once per account at sign-up.
type UserProfile struct {
	UserID    string    `json:"uid" bson:"uid"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// IdentityGateway is the identity provider. Expected failures (bad
// credentials, duplicate account, provider down) are returned as
// ordinary errors whose text is suitable for display.
type IdentityGateway interface {
	SignIn(ctx context.Context, email, password string) (userID string, err error)
	SignUp(ctx context.Context, email, password string) (userID string, err error)
}

// ProfileStore is the document store holding one profile per user.
type ProfileStore interface {
	Create(ctx context.Context, p UserProfile) error
}

// Recorder receives counters about gate activity.
type Recorder interface {
	AuthAttempt(op string, ok bool)
	ProfileWrite(ok bool)
	ScreenTransition(to Screen)
}

type nopRecorder struct{}

func (nopRecorder) AuthAttempt(string, bool) {}
func (nopRecorder) ProfileWrite(bool)        {}
func (nopRecorder) ScreenTransition(Screen)  {}
