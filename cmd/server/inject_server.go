package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/pandodao/spl-minter/handler/api"
	"github.com/pandodao/spl-minter/handler/hc"
	"github.com/pandodao/spl-minter/service/phantom"
	"github.com/pandodao/spl-minter/service/session"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var serverSet = wire.NewSet(
	wire.Bind(new(api.Session), new(*session.Controller)),
	wire.Bind(new(api.Disconnecter), new(*phantom.Extension)),
	api.New,
	provideServer,
)

func provideServer(v *viper.Viper, apiHandler *api.Server, conn *nap.DB) *http.Server {
	v.SetDefault("server.cors", true)

	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	if v.GetBool("server.cors") {
		m.Use(cors.AllowAll().Handler)
	}

	var db hc.Pinger
	if conn != nil {
		db = conn
	}

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version, db))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
