package session

import (
	"fmt"

	"github.com/pandodao/spl-minter/core"
)

type State uint8

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is the state rendered by the presentation layer.
type Snapshot struct {
	Version   uint64             `json:"version"`
	SessionID string             `json:"session_id"`
	State     State              `json:"state"`
	Wallet    core.WalletSession `json:"wallet"`
	Status    core.Notification  `json:"status"`
	Tokens    []*core.Token      `json:"tokens"`
	Form      core.TokenForm     `json:"form"`
}

func cloneTokens(tokens []*core.Token) []*core.Token {
	out := make([]*core.Token, len(tokens))
	for i, t := range tokens {
		c := *t
		out[i] = &c
	}

	return out
}
