// Package phantom simulates a Phantom-compatible browser-extension wallet.
package phantom

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/pandodao/spl-minter/core"
)

var ErrUserRejected = errors.New("User rejected the request.")

type Config struct {
	// Installed false behaves as if no extension is present.
	Installed bool
	// Approve false makes the user decline every connection prompt.
	Approve bool
}

type Extension struct {
	logger *slog.Logger
	cfg    Config

	mux       sync.Mutex
	key       solana.PublicKey
	trusted   bool
	listeners []func()
}

func New(logger *slog.Logger, cfg Config) *Extension {
	return &Extension{
		logger: logger.With("service", "phantom"),
		cfg:    cfg,
	}
}

func (e *Extension) IsPhantomCompatible() bool {
	return e.cfg.Installed
}

// Connect approves the prompt and returns the extension's key, minting a keypair on first use.
// With OnlyIfTrusted it only succeeds once the user approved a previous connection.
func (e *Extension) Connect(ctx context.Context, opts core.ConnectOptions) (*core.ConnectResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mux.Lock()
	defer e.mux.Unlock()

	if opts.OnlyIfTrusted && !e.trusted {
		return nil, ErrUserRejected
	}

	if !e.cfg.Approve {
		e.logger.Info("connection declined")
		return nil, ErrUserRejected
	}

	if e.key.IsZero() {
		e.key = solana.NewWallet().PublicKey()
	}

	e.trusted = true
	e.logger.Info("connected", "public_key", e.key)
	return &core.ConnectResponse{PublicKey: e.key}, nil
}

func (e *Extension) OnDisconnect(fn func()) {
	e.mux.Lock()
	e.listeners = append(e.listeners, fn)
	e.mux.Unlock()
}

// Disconnect fires the disconnect event to every listener.
func (e *Extension) Disconnect() {
	e.mux.Lock()
	listeners := append([]func(){}, e.listeners...)
	e.mux.Unlock()

	e.logger.Info("disconnect", "listeners", len(listeners))
	for _, fn := range listeners {
		fn()
	}
}
