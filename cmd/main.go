// Package main runs the Account REST API service.
package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/account-service/cmd/httpserver"
	"github.com/go-petr/account-service/internal/accountrepo"
	"github.com/go-petr/account-service/internal/middleware"
	"github.com/go-petr/account-service/pkg/configpkg"
	"github.com/go-petr/account-service/pkg/dbpkg"
)

const initTimeout = 10 * time.Second

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	err = accountrepo.NewRepoPGS(db).Init(ctx)
	cancel()

	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create accounts table")
	}

	gin.SetMode(gin.ReleaseMode)

	server := httpserver.New(db, logger, config)

	logger.Info().Str("address", config.ServerAddress).Msg("ACCOUNT API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
