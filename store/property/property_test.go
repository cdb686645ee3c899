package property

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func stores(t *testing.T) map[string]core.PropertyStore {
	conn, err := db.Open(filepath.Join(t.TempDir(), "properties.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return map[string]core.PropertyStore{
		"sqlite3": New(conn),
		"memory":  NewMemory(),
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			values := []entry{{Name: "keep"}}
			require.NoError(t, s.Get(context.Background(), "missing", &values))
			assert.Equal(t, []entry{{Name: "keep"}}, values)
		})
	}
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "entries", []entry{{Name: "a", Count: 1}}))
			require.NoError(t, s.Set(ctx, "entries", []entry{{Name: "a", Count: 1}, {Name: "b", Count: 2}}))

			var got []entry
			require.NoError(t, s.Get(ctx, "entries", &got))
			assert.Equal(t, []entry{{Name: "a", Count: 1}, {Name: "b", Count: 2}}, got)
		})
	}
}

func TestStore_GetReturnsCopies(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "entries", []entry{{Name: "a"}}))

			var first []entry
			require.NoError(t, s.Get(ctx, "entries", &first))
			first[0].Name = "mutated"

			var second []entry
			require.NoError(t, s.Get(ctx, "entries", &second))
			assert.Equal(t, "a", second[0].Name)
		})
	}
}
