package token

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/address"
	"github.com/pandodao/spl-minter/store/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newToken(owner, symbol string) *core.Token {
	return &core.Token{
		Name:                   "Token " + symbol,
		Symbol:                 symbol,
		Decimals:               9,
		InitialSupply:          1000,
		FreezeAuthorityEnabled: true,
		MintAuthorityRetained:  true,
		MintAddress:            address.New().Generate(),
		Owner:                  owner,
		Network:                core.NetworkDevnet,
		CreatedAt:              time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestTokenStore_AppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	s := New(property.NewMemory())

	empty, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	token := newToken("Addr1", "FOO")
	require.NoError(t, s.Append(ctx, token))

	tokens, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	got := tokens[0]
	assert.True(t, got.CreatedAt.Equal(token.CreatedAt))
	got.CreatedAt = token.CreatedAt
	assert.Equal(t, token, got)
	assert.Len(t, got.MintAddress, 44)
	assert.True(t, address.Valid(got.MintAddress))
}

func TestTokenStore_ReadAllSnapshotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := New(property.NewMemory())
	require.NoError(t, s.Append(ctx, newToken("Addr1", "FOO")))

	first, err := s.ReadAll(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Token FOO", second[0].Name)
}

func TestTokenStore_ListOwner(t *testing.T) {
	ctx := context.Background()
	s := New(property.NewMemory())

	require.NoError(t, s.Append(ctx, newToken("Addr1", "AAA")))
	require.NoError(t, s.Append(ctx, newToken("Addr2", "BBB")))

	tokens, err := s.ListOwner(ctx, "Addr1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "AAA", tokens[0].Symbol)

	// appending must invalidate the cached owner view
	require.NoError(t, s.Append(ctx, newToken("Addr1", "CCC")))

	tokens, err = s.ListOwner(ctx, "Addr1")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "CCC", tokens[1].Symbol)

	none, err := s.ListOwner(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTokenStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := New(property.NewMemory())

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		symbol := fmt.Sprintf("T%d", i)
		g.Go(func() error {
			return s.Append(ctx, newToken("Addr1", symbol))
		})
	}

	require.NoError(t, g.Wait())

	tokens, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tokens, 50)
}

type brokenProperties struct {
	getErr, setErr error
}

func (b brokenProperties) Get(context.Context, string, any) error { return b.getErr }
func (b brokenProperties) Set(context.Context, string, any) error { return b.setErr }

func TestTokenStore_ErrorKinds(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := New(brokenProperties{getErr: boom}).ReadAll(ctx)
	assert.ErrorIs(t, err, core.ErrStorageRead)
	assert.ErrorIs(t, err, boom)

	err = New(brokenProperties{setErr: boom}).Append(ctx, newToken("Addr1", "FOO"))
	assert.ErrorIs(t, err, core.ErrStorageWrite)
}
