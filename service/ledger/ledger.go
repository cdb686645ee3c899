package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/spl-minter/core"
	"github.com/shopspring/decimal"
)

type Config struct {
	// ConfirmDelay stands in for the confirmation wait of a submitted transaction.
	ConfirmDelay time.Duration
	// FeeFaultRate is the probability a MainnetBeta submission fails for lack of fees.
	FeeFaultRate float64
}

type Option func(*service)

// WithRand replaces the source of uniform values in [0, 1).
func WithRand(fn func() float64) Option {
	return func(s *service) {
		s.rand = fn
	}
}

func New(wallet core.WalletProvider, logger *slog.Logger, cfg Config, opts ...Option) core.LedgerService {
	if !govalidator.InRangeFloat64(cfg.FeeFaultRate, 0, 1) {
		panic(fmt.Errorf("fee fault rate %v out of range [0, 1]", cfg.FeeFaultRate))
	}

	s := &service{
		wallet: wallet,
		logger: logger.With("service", "ledger"),
		cfg:    cfg,
		rand:   rand.Float64,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type service struct {
	wallet core.WalletProvider
	logger *slog.Logger
	cfg    Config
	rand   func() float64
}

var (
	maxBalance = decimal.NewFromInt(10)
	topBalance = decimal.RequireFromString("9.9999")
)

func (s *service) Connect(ctx context.Context, opts core.ConnectOptions) (string, error) {
	if s.wallet == nil || !s.wallet.IsPhantomCompatible() {
		return "", core.ErrNoWalletProvider
	}

	resp, err := s.wallet.Connect(ctx, opts)
	if err != nil {
		return "", core.WrapError(core.KindConnectionRejected, "", err)
	}

	if resp == nil || resp.PublicKey == nil {
		return "", core.NewError(core.KindConnectionRejected, "wallet returned no public key")
	}

	return resp.PublicKey.String(), nil
}

// Balance returns a uniformly random amount in [0, 10) rounded to 4 places.
func (s *service) Balance(ctx context.Context, network core.Network, address string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	amount := decimal.NewFromFloat(s.rand() * 10).Round(4)
	if amount.GreaterThanOrEqual(maxBalance) {
		amount = topBalance
	}

	s.logger.Debug("get balance", "endpoint", network.Endpoint(), "address", address, "balance", amount)
	return amount, nil
}

func (s *service) SubmitToken(ctx context.Context, payload core.TokenPayload) error {
	logger := s.logger.With("endpoint", payload.Network.Endpoint(), "symbol", payload.Form.Symbol)
	logger.Debug("submit token creation")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.cfg.ConfirmDelay):
	}

	if payload.Network == core.NetworkMainnetBeta && s.rand() < s.cfg.FeeFaultRate {
		logger.Info("simulated fee fault")
		return core.ErrSimulatedFee
	}

	return nil
}
