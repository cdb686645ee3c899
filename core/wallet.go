package core

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ConnectOptions struct {
	OnlyIfTrusted bool `json:"only_if_trusted,omitempty"`
}

type PublicKey interface {
	String() string
}

type ConnectResponse struct {
	PublicKey PublicKey
}

// WalletProvider is the capability surface of a browser-extension wallet.
type WalletProvider interface {
	IsPhantomCompatible() bool
	Connect(ctx context.Context, opts ConnectOptions) (*ConnectResponse, error)
	// OnDisconnect registers fn to be called when the extension disconnects.
	OnDisconnect(fn func())
}

type BalanceState uint8

const (
	BalanceAbsent BalanceState = iota
	BalanceAvailable
	BalanceError
)

type Balance struct {
	State  BalanceState
	Amount decimal.Decimal
}

func BalanceOf(amount decimal.Decimal) Balance {
	return Balance{State: BalanceAvailable, Amount: amount}
}

func (b Balance) String() string {
	switch b.State {
	case BalanceAvailable:
		return b.Amount.StringFixed(4)
	case BalanceError:
		return "Error"
	default:
		return ""
	}
}

// MarshalJSON renders null when absent, "Error" on failure and a bare number otherwise.
func (b Balance) MarshalJSON() ([]byte, error) {
	switch b.State {
	case BalanceAvailable:
		return []byte(b.Amount.StringFixed(4)), nil
	case BalanceError:
		return []byte(`"Error"`), nil
	default:
		return []byte("null"), nil
	}
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = Balance{}
		return nil
	case bytes.Equal(data, []byte(`"Error"`)):
		*b = Balance{State: BalanceError}
		return nil
	}

	var amount decimal.Decimal
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}

	*b = BalanceOf(amount)
	return nil
}

type WalletSession struct {
	Address      string  `json:"address"`
	ShortAddress string  `json:"short_address"`
	Network      Network `json:"network"`
	Balance      Balance `json:"balance"`
}

func ShortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}

	return addr[:4] + "..." + addr[len(addr)-4:]
}
