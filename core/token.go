package core

import (
	"context"
	"time"
)

type Token struct {
	Name                   string    `json:"name"`
	Symbol                 string    `json:"symbol"`
	Decimals               int       `json:"decimals"`
	InitialSupply          float64   `json:"initialSupply"`
	Description            string    `json:"description"`
	Image                  string    `json:"image"`
	FreezeAuthorityEnabled bool      `json:"freezeAuthorityEnabled"`
	MintAuthorityRetained  bool      `json:"mintAuthorityRetained"`
	MintAddress            string    `json:"mintAddress"`
	Owner                  string    `json:"owner"`
	Network                Network   `json:"network"`
	CreatedAt              time.Time `json:"createdAt"`
}

// TokenForm is the pending token-creation input.
type TokenForm struct {
	Name                   string  `json:"name"`
	Symbol                 string  `json:"symbol"`
	Decimals               int     `json:"decimals"`
	InitialSupply          float64 `json:"initialSupply"`
	Description            string  `json:"description"`
	Image                  string  `json:"image"`
	FreezeAuthorityEnabled bool    `json:"freezeAuthorityEnabled"`
	MintAuthorityRetained  bool    `json:"mintAuthorityRetained"`
}

func DefaultTokenForm() TokenForm {
	return TokenForm{
		Decimals:               9,
		FreezeAuthorityEnabled: true,
		MintAuthorityRetained:  true,
	}
}

type TokenStore interface {
	// ReadAll returns an independent snapshot of every record.
	ReadAll(ctx context.Context) ([]*Token, error)
	Append(ctx context.Context, token *Token) error
	ListOwner(ctx context.Context, owner string) ([]*Token, error)
}

type AddressGenerator interface {
	Generate() string
}
