// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-service/internal/accountdelivery"
	"github.com/go-petr/account-service/internal/accountrepo"
	"github.com/go-petr/account-service/internal/accountservice"
	"github.com/go-petr/account-service/internal/middleware"
	"github.com/go-petr/account-service/internal/systemdelivery"
	"github.com/go-petr/account-service/pkg/configpkg"
	"github.com/go-petr/account-service/pkg/errorspkg"
	"github.com/go-petr/account-service/pkg/web"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) *Server {
	accountRepo := accountrepo.NewRepoPGS(conn)
	accountService := accountservice.New(accountRepo)
	accountHandler := accountdelivery.NewHandler(accountService)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.SecurityHeaders(config.ForceHTTPS))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, web.Error(errorspkg.ErrRouteNotFound))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, web.Error(errorspkg.ErrMethodNotAllowed))
	})

	engine.GET("/", systemdelivery.Index)
	engine.GET("/health", systemdelivery.Health)

	jsonOnly := middleware.RequireContentType(middleware.MIMEJSON)

	engine.POST("/accounts", jsonOnly, accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.PUT("/accounts/:id", jsonOnly, accountHandler.Update)
	engine.DELETE("/accounts/:id", accountHandler.Delete)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server
}
