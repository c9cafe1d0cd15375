package main

import (
	"net/http"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/accountd/accountd/cmd/httpserver"
	"github.com/accountd/accountd/internal/middleware"
	"github.com/accountd/accountd/pkg/configpkg"
	"github.com/accountd/accountd/pkg/dbpkg"
	"github.com/accountd/accountd/pkg/redispkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	rdb, err := redispkg.NewClient(config.RedisAddress, config.RedisPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to redis")
	}

	server, err := httpserver.New(conn, rdb, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("starting server")

	if err := http.ListenAndServe(config.ServerAddress, server); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
