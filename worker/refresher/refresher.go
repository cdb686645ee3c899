package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
)

type BalanceRefresher interface {
	RefreshBalance(ctx context.Context) error
}

type Config struct {
	Interval time.Duration `valid:"required"`
}

func New(session BalanceRefresher, logger *slog.Logger, cfg Config) *Refresher {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Refresher{
		session: session,
		logger:  logger.With("worker", "refresher"),
		cfg:     cfg,
	}
}

// Refresher refreshes the wallet balance on a fixed interval until its context ends.
type Refresher struct {
	session BalanceRefresher
	logger  *slog.Logger
	cfg     Config
}

func (w *Refresher) Run(ctx context.Context) error {
	w.logger.Debug("refresher start", "interval", w.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("refresher stop")
			return ctx.Err()
		case <-time.After(w.cfg.Interval):
			if err := w.session.RefreshBalance(ctx); err != nil {
				w.logger.Warn("session.RefreshBalance", "err", err)
			}
		}
	}
}
