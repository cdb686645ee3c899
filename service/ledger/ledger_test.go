package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pandodao/spl-minter/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publicKey string

func (k publicKey) String() string { return string(k) }

type fakeWallet struct {
	compatible bool
	addr       string
	err        error
}

func (w *fakeWallet) IsPhantomCompatible() bool { return w.compatible }

func (w *fakeWallet) Connect(context.Context, core.ConnectOptions) (*core.ConnectResponse, error) {
	if w.err != nil {
		return nil, w.err
	}

	return &core.ConnectResponse{PublicKey: publicKey(w.addr)}, nil
}

func (w *fakeWallet) OnDisconnect(func()) {}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	_, err := New(nil, discard(), Config{}).Connect(ctx, core.ConnectOptions{})
	assert.ErrorIs(t, err, core.ErrNoWalletProvider)

	_, err = New(&fakeWallet{compatible: false, addr: "Addr1"}, discard(), Config{}).Connect(ctx, core.ConnectOptions{})
	assert.ErrorIs(t, err, core.ErrNoWalletProvider)

	_, err = New(&fakeWallet{compatible: true, err: errors.New("User rejected the request.")}, discard(), Config{}).Connect(ctx, core.ConnectOptions{})
	assert.ErrorIs(t, err, core.ErrConnectionRejected)
	assert.EqualError(t, err, "User rejected the request.")

	addr, err := New(&fakeWallet{compatible: true, addr: "Addr1"}, discard(), Config{}).Connect(ctx, core.ConnectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Addr1", addr)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		rand float64
		want string
	}{
		{"zero", 0, "0"},
		{"rounded", 0.123456, "1.2346"},
		{"upper bound", 0.999999, "9.9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, discard(), Config{}, WithRand(func() float64 { return tt.rand }))
			got, err := s.Balance(context.Background(), core.NetworkDevnet, "Addr1")
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestBalanceRange(t *testing.T) {
	s := New(nil, discard(), Config{})
	for i := 0; i < 200; i++ {
		got, err := s.Balance(context.Background(), core.NetworkDevnet, "Addr1")
		require.NoError(t, err)
		assert.False(t, got.IsNegative())
		assert.True(t, got.LessThan(maxBalance))
		assert.True(t, got.Equal(got.Round(4)))
	}
}

func TestSubmitToken(t *testing.T) {
	ctx := context.Background()
	always := WithRand(func() float64 { return 0 })

	s := New(nil, discard(), Config{FeeFaultRate: 0.5}, always)

	err := s.SubmitToken(ctx, core.TokenPayload{Network: core.NetworkDevnet})
	assert.NoError(t, err, "devnet never faults")

	err = s.SubmitToken(ctx, core.TokenPayload{Network: core.NetworkMainnetBeta})
	assert.ErrorIs(t, err, core.ErrSimulatedFee)

	s = New(nil, discard(), Config{FeeFaultRate: 0}, always)
	assert.NoError(t, s.SubmitToken(ctx, core.TokenPayload{Network: core.NetworkMainnetBeta}))
}

func TestSubmitTokenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(nil, discard(), Config{ConfirmDelay: time.Hour})
	assert.ErrorIs(t, s.SubmitToken(ctx, core.TokenPayload{}), context.Canceled)
}

func TestNewRejectsBadRate(t *testing.T) {
	assert.Panics(t, func() { New(nil, discard(), Config{FeeFaultRate: 1.5}) })
}
