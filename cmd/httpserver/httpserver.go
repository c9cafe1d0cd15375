// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/accountdelivery"
	"github.com/accountd/accountd/internal/accountrepo"
	"github.com/accountd/accountd/internal/accountservice"
	"github.com/accountd/accountd/internal/middleware"
	"github.com/accountd/accountd/internal/ownerrepo"
	"github.com/accountd/accountd/internal/txndelivery"
	"github.com/accountd/accountd/internal/txnrepo"
	"github.com/accountd/accountd/internal/txnservice"
	"github.com/accountd/accountd/pkg/configpkg"
	"github.com/accountd/accountd/pkg/lockpkg"
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
func New(conn *sql.DB, rdb redis.UniversalClient, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ownerRepo := ownerrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	txnRepo := txnrepo.NewRepoPGS(conn)

	locker := lockpkg.New(rdb, config.LockWaitTimeout, config.LockLeaseTime)

	accountService := accountservice.New(accountRepo, ownerRepo, locker)
	txnService := txnservice.New(txnRepo, accountRepo, ownerRepo, locker)

	accountHandler := accountdelivery.NewHandler(accountService)
	txnHandler := txndelivery.NewHandler(txnService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.DELETE("/accounts", accountHandler.Close)
	engine.GET("/accounts", accountHandler.List)

	engine.POST("/transactions/use", txnHandler.Use)
	engine.POST("/transactions/cancel", txnHandler.Cancel)
	engine.GET("/transactions/:transaction_id", txnHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("accnumber", accountdelivery.ValidAccountNumber)
		if err != nil {
			return nil, errors.New("cannot register account number validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
