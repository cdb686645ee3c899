package main

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/address"
	"github.com/pandodao/spl-minter/service/ledger"
	"github.com/pandodao/spl-minter/service/phantom"
	"github.com/pandodao/spl-minter/service/session"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	providePhantomConfig,
	phantom.New,
	wire.Bind(new(core.WalletProvider), new(*phantom.Extension)),
	provideLedgerConfig,
	provideLedger,
	address.New,
	provideSessionConfig,
	provideSession,
)

func providePhantomConfig(v *viper.Viper) phantom.Config {
	v.SetDefault("wallet.installed", true)
	v.SetDefault("wallet.approve", true)

	return phantom.Config{
		Installed: v.GetBool("wallet.installed"),
		Approve:   v.GetBool("wallet.approve"),
	}
}

func provideLedgerConfig(v *viper.Viper) ledger.Config {
	v.SetDefault("ledger.confirm_delay", "1.5s")
	v.SetDefault("ledger.fee_fault_rate", 0.2)

	return ledger.Config{
		ConfirmDelay: v.GetDuration("ledger.confirm_delay"),
		FeeFaultRate: v.GetFloat64("ledger.fee_fault_rate"),
	}
}

func provideLedger(wallet core.WalletProvider, logger *slog.Logger, cfg ledger.Config) core.LedgerService {
	return ledger.New(wallet, logger, cfg)
}

func provideSessionConfig(v *viper.Viper) session.Config {
	v.SetDefault("session.refresh_interval", "30s")
	v.SetDefault("session.status_ttl", "5s")
	v.SetDefault("session.load_delay", "1s")
	v.SetDefault("session.network", string(core.NetworkDevnet))

	return session.Config{
		RefreshInterval: v.GetDuration("session.refresh_interval"),
		StatusTTL:       v.GetDuration("session.status_ttl"),
		LoadDelay:       v.GetDuration("session.load_delay"),
		Network:         core.Network(v.GetString("session.network")),
	}
}

func provideSession(
	wallet core.WalletProvider,
	ledger core.LedgerService,
	tokens core.TokenStore,
	addresses core.AddressGenerator,
	logger *slog.Logger,
	cfg session.Config,
) (*session.Controller, func()) {
	c := session.New(wallet, ledger, tokens, addresses, logger, cfg)
	return c, c.Close
}
