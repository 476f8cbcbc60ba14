// @title         Mingle API
// @version       0.1.0
// @description   Personalized feed generation and interaction recording

package main

import (
	"context"

	"mingle/internal/platform/config"
	"mingle/internal/platform/logger"
	phttp "mingle/internal/platform/net/http"
	"mingle/internal/platform/store"

	"mingle/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("API_")

	pgCfg := root.Prefix("PGSQL_")
	chCfg := root.Prefix("CLICKHOUSE_")

	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "mingle-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled:    chCfg.MayBool("ENABLED", true),
				URL:        chCfg.MayString("DBURL", "clickhouse://localhost:9000/mingle"),
				ClientName: "mingle",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads API_PORT / API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        root,
			Store:         st,
			Logger:        *l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	l.Info().Str("addr", srv.Addr()).Msg("mingle api listening")
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
