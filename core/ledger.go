package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type TokenPayload struct {
	Form    TokenForm
	Owner   string
	Network Network
}

type LedgerService interface {
	Connect(ctx context.Context, opts ConnectOptions) (string, error)
	Balance(ctx context.Context, network Network, address string) (decimal.Decimal, error)
	SubmitToken(ctx context.Context, payload TokenPayload) error
}
