package property

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/spl-minter/core"
	"github.com/tsenart/nap"
)

type store struct {
	db *nap.DB
}

func New(db *nap.DB) core.PropertyStore {
	return &store{db: db}
}

// Get decodes the value saved under key into value. A missing key leaves value untouched.
func (s *store) Get(ctx context.Context, key string, value any) error {
	var raw []byte
	b := sq.Select("`value`").From("properties").Where(sq.Eq{"`key`": key})
	if err := b.RunWith(s.db).QueryRowContext(ctx).Scan(&raw); err == nil {
		return json.Unmarshal(raw, value)
	} else if errors.Is(err, sql.ErrNoRows) {
		return nil
	} else {
		return err
	}
}

func (s *store) Set(ctx context.Context, key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	u := sq.Update("properties").
		Set("`value`", jsonValue).
		Set("`version`", sq.Expr("`version` + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"`key`": key})

	r, err := u.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	i := sq.Insert("properties").Columns("`key`", "`value`").Values(key, jsonValue)
	_, err = i.RunWith(s.db).ExecContext(ctx)
	return err
}
