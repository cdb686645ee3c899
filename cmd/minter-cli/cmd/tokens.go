/*
Copyright © 2024 pando
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/pandodao/generic"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/address"
	"github.com/spf13/cobra"
)

var tokensOpt struct {
	network string
}

type tokenView struct {
	Mint      string       `json:"mint"`
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	Decimals  int          `json:"decimals"`
	Supply    float64      `json:"initial_supply"`
	Owner     string       `json:"owner"`
	Network   core.Network `json:"network"`
	CreatedAt string       `json:"created_at"`
}

func viewToken(t *core.Token) tokenView {
	return tokenView{
		Mint:      t.MintAddress,
		Symbol:    t.Symbol,
		Name:      t.Name,
		Decimals:  t.Decimals,
		Supply:    t.InitialSupply,
		Owner:     core.ShortAddress(t.Owner),
		Network:   t.Network,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens [owner]",
	Short: "list persisted tokens, optionally of one owner",
	Args: cobra.MatchAll(cobra.MaximumNArgs(1), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && !address.IsBase58(args[0]) {
			return fmt.Errorf("owner %q is not a base58 address", args[0])
		}

		return nil
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, closeFn, err := openTokens()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()

		var list []*core.Token
		if len(args) == 1 {
			list, err = tokens.ListOwner(ctx, args[0])
		} else {
			list, err = tokens.ReadAll(ctx)
		}

		if err != nil {
			return err
		}

		if tokensOpt.network != "" {
			network, err := core.ParseNetwork(tokensOpt.network)
			if err != nil {
				return err
			}

			list = filterNetwork(list, network)
		}

		return printJson(cmd, generic.MapSlice(list, viewToken))
	},
}

func filterNetwork(tokens []*core.Token, network core.Network) []*core.Token {
	var out []*core.Token
	for _, t := range tokens {
		if t.Network == network {
			out = append(out, t)
		}
	}

	return out
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVar(&tokensOpt.network, "network", "", "only tokens of this network (devnet, mainnet-beta)")
}
