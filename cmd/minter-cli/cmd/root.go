/*
Copyright © 2024 pando
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/store/db"
	"github.com/pandodao/spl-minter/store/property"
	"github.com/pandodao/spl-minter/store/token"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minter-cli",
	Short: "inspect tokens minted by the spl minter",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dsn", "spl-minter.db", "sqlite3 database path")
	viper.BindPFlag("db.dsn", rootCmd.PersistentFlags().Lookup("dsn"))
	viper.SetEnvPrefix("minter")
	viper.AutomaticEnv()
}

// openTokens opens the record store of the configured database.
func openTokens() (core.TokenStore, func(), error) {
	conn, err := db.Open(viper.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	return token.New(property.New(conn)), func() { _ = conn.Close() }, nil
}

func printJson(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
