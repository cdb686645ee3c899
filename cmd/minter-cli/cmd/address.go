/*
Copyright © 2024 pando
*/
package cmd

import (
	"fmt"

	"github.com/pandodao/spl-minter/service/address"
	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/mapset"
)

var addressOpt struct {
	count int
}

// addressCmd represents the address command
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "generate distinct mock mint addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			g    = address.New()
			seen = mapset.New[string]()
		)

		for seen.Size() < addressOpt.count {
			addr := g.Generate()
			if seen.Has(addr) {
				continue
			}

			seen.Put(addr)
			fmt.Fprintln(cmd.OutOrStdout(), addr)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().IntVarP(&addressOpt.count, "count", "n", 1, "number of addresses")
}
