// Package main provides the API to manage accounts, sessions and trades.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/go-coinx/coinx/cmd/httpserver"
	"github.com/go-coinx/coinx/internal/accountrepo"
	"github.com/go-coinx/coinx/internal/middleware"
	"github.com/go-coinx/coinx/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)
	ctx := logger.WithContext(context.Background())

	repo := accountrepo.NewRepoFile(config.AccountsFile)

	if err := repo.InitIfMissing(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot initialize account table")
	}

	if err := repo.Load(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot load account table")
	}

	server, err := httpserver.New(repo, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("COINX API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
