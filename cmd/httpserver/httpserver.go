// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-coinx/coinx/internal/accountrepo"
	"github.com/go-coinx/coinx/internal/exchangedelivery"
	"github.com/go-coinx/coinx/internal/exchangeservice"
	"github.com/go-coinx/coinx/internal/middleware"
	"github.com/go-coinx/coinx/internal/priceoracle"
	"github.com/go-coinx/coinx/internal/sessionrepo"
	"github.com/go-coinx/coinx/internal/sessionservice"
	"github.com/go-coinx/coinx/internal/tradeservice"
	"github.com/go-coinx/coinx/internal/userservice"
	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/go-coinx/coinx/pkg/configpkg"
)

// Server holds the account repo, handlers router and configuration.
type Server struct {
	Repo   *accountrepo.RepoFile
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(repo *accountrepo.RepoFile, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	sessionStore := sessionrepo.NewRepoMem()

	userService := userservice.New(repo, config.BonusMinUSD, config.BonusMaxUSD)
	sessionService := sessionservice.New(userService, config.SessionIdleTimeout)
	tradeService := tradeservice.New(repo)
	oracle := priceoracle.New(config.PriceAPIBaseURL, config.PriceFetchTimeout)

	exchange := exchangeservice.New(userService, sessionService, tradeService, oracle)
	handler := exchangedelivery.NewHandler(exchange, sessionStore)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.SessionLoader(sessionStore))

	engine.POST("/signup", handler.SignUp)
	engine.POST("/signin", handler.SignIn)
	engine.POST("/signout", handler.SignOut)
	engine.GET("/me", handler.Me)
	engine.POST("/buy", handler.Buy)
	engine.POST("/sell", handler.Sell)
	engine.GET("/prices", handler.Prices)
	engine.GET("/prices/:coin/history", handler.History)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("coin", coinpkg.ValidCoin)
		if err != nil {
			return nil, errors.New("cannot register coin validator")
		}
	}

	server := &Server{
		Repo:   repo,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
