package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/perono/internal/config"
	"github.com/dmitrijs2005/perono/internal/flagstore"
	"github.com/dmitrijs2005/perono/internal/identity"
	"github.com/dmitrijs2005/perono/internal/localdb"
	"github.com/dmitrijs2005/perono/internal/logging"
	"github.com/dmitrijs2005/perono/internal/metrics"
	"github.com/dmitrijs2005/perono/internal/profiles"
	"github.com/dmitrijs2005/perono/internal/queue"
	"github.com/dmitrijs2005/perono/internal/repositories/accounts"
	"github.com/dmitrijs2005/perono/internal/session"
)

// newRabbit is a seam for tests that configure an AMQP URL.
var newRabbit = func(url, exchange string) (queue.Publisher, error) {
	return queue.NewRabbit(url, exchange)
}

// NewApp opens the local database, builds the providers selected by cfg and
// loads the session controller from the persisted flags. The metrics server
// and the transition forwarder run until ctx is done or Close is called.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (_ *App, err error) {
	a := &App{
		config: cfg,
		logger: logger,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}
	defer func() {
		if err != nil {
			_ = a.Close(ctx)
		}
	}()

	db, err := localdb.Open(ctx, cfg.DataDir, cfg.DBFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return db.Close() })

	gateway, err := newIdentity(cfg, db)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := profiles.New(ctx, cfg, db)
	if err != nil {
		return nil, fmt.Errorf("profile store: %w", err)
	}
	a.closers = append(a.closers, closeStore)

	recorder := metrics.NewRecorder()
	a.ctrl, err = session.LoadController(ctx, gateway, store, flagstore.New(db),
		session.WithLogger(logger), session.WithRecorder(recorder))
	if err != nil {
		return nil, err
	}

	a.startForwarder(ctx, a.newPublisher(ctx))

	if cfg.MetricsAddr != "" {
		a.startMetrics(ctx, recorder)
	}

	logger.Info(ctx, "session loaded", "screen", a.ctrl.CurrentScreen(), "identity", cfg.IdentityProvider, "profiles", cfg.ProfileStore)
	return a, nil
}

func newIdentity(cfg *config.Config, db *sql.DB) (session.IdentityGateway, error) {
	switch cfg.IdentityProvider {
	case config.IdentityLocal:
		return identity.NewLocal(accounts.NewSQLiteRepository(db)), nil
	case config.IdentityFirebase:
		return identity.NewFirebase(cfg.FirebaseEndpoint, cfg.FirebaseAPIKey, cfg.HTTPTimeout), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.IdentityProvider)
	}
}

// newPublisher falls back to a no-op publisher when the broker is not
// configured or cannot be reached.
func (a *App) newPublisher(ctx context.Context) queue.Publisher {
	if a.config.AMQPURL == "" {
		return queue.NewNoop()
	}
	pub, err := newRabbit(a.config.AMQPURL, a.config.AMQPExchange)
	if err != nil {
		a.logger.Warn(ctx, "transition events disabled", "error", err)
		return queue.NewNoop()
	}
	return pub
}

func (a *App) startForwarder(ctx context.Context, pub queue.Publisher) {
	sub, unsubscribe := a.ctrl.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		queue.Forward(ctx, sub, pub, a.logger)
	}()

	a.closers = append(a.closers, func(context.Context) error {
		unsubscribe()
		<-done
		return pub.Close()
	})
}

func (a *App) startMetrics(ctx context.Context, recorder *metrics.Recorder) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := metrics.Serve(ctx, a.config.MetricsAddr, recorder, a.logger); err != nil {
			a.logger.Error(ctx, "metrics server failed", "error", err)
		}
	}()

	a.closers = append(a.closers, func(context.Context) error {
		cancel()
		<-done
		return nil
	})
}
