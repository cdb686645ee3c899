package main

import (
	"github.com/google/wire"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/store/db"
	"github.com/pandodao/spl-minter/store/property"
	"github.com/pandodao/spl-minter/store/token"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var storeSet = wire.NewSet(
	provideDB,
	provideProperties,
	token.New,
)

// provideDB returns a nil handle for the memory driver.
func provideDB(v *viper.Viper) (*nap.DB, func(), error) {
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "spl-minter.db")

	if v.GetString("db.driver") == "memory" {
		return nil, func() {}, nil
	}

	conn, err := db.Open(v.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}

func provideProperties(conn *nap.DB) core.PropertyStore {
	if conn == nil {
		return property.NewMemory()
	}

	return property.New(conn)
}
