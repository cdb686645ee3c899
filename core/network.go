package core

import (
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
)

type Network string

const (
	NetworkDevnet      Network = "devnet"
	NetworkMainnetBeta Network = "mainnet-beta"
)

func ParseNetwork(s string) (Network, error) {
	switch n := Network(s); n {
	case NetworkDevnet, NetworkMainnetBeta:
		return n, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

func (n Network) Valid() bool {
	return n == NetworkDevnet || n == NetworkMainnetBeta
}

// Endpoint returns the RPC endpoint simulated calls target on this network.
func (n Network) Endpoint() string {
	if n == NetworkMainnetBeta {
		return rpc.MainNetBeta_RPC
	}

	return rpc.DevNet_RPC
}

func (n Network) String() string {
	return string(n)
}
