package phantom

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pandodao/spl-minter/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtension_Connect(t *testing.T) {
	ctx := context.Background()
	e := New(discard(), Config{Installed: true, Approve: true})

	_, err := e.Connect(ctx, core.ConnectOptions{OnlyIfTrusted: true})
	assert.ErrorIs(t, err, ErrUserRejected, "untrusted site")

	resp, err := e.Connect(ctx, core.ConnectOptions{})
	require.NoError(t, err)

	_, err = solana.PublicKeyFromBase58(resp.PublicKey.String())
	assert.NoError(t, err)

	again, err := e.Connect(ctx, core.ConnectOptions{OnlyIfTrusted: true})
	require.NoError(t, err)
	assert.Equal(t, resp.PublicKey.String(), again.PublicKey.String())
}

func TestExtension_Rejects(t *testing.T) {
	e := New(discard(), Config{Installed: true, Approve: false})
	_, err := e.Connect(context.Background(), core.ConnectOptions{})
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.False(t, New(discard(), Config{}).IsPhantomCompatible())
}

func TestExtension_Disconnect(t *testing.T) {
	e := New(discard(), Config{Installed: true, Approve: true})

	var calls int
	e.OnDisconnect(func() { calls++ })
	e.OnDisconnect(func() { calls++ })

	e.Disconnect()
	assert.Equal(t, 2, calls)
}
