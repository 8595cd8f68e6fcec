// Package exchangedelivery manages delivery layer of the exchange API.
//
// Handlers only bind request fields, hand the session value through the core
// facade and render the structured result. No business rule lives here.
package exchangedelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/internal/middleware"
	"github.com/go-coinx/coinx/internal/sessionrepo"
	"github.com/go-coinx/coinx/pkg/errorspkg"
	"github.com/go-coinx/coinx/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service provides the core facade interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package exchangedelivery
type Service interface {
	SignUp(ctx context.Context, sess domain.Session, username, password string, agreementAccepted bool) (domain.Session, domain.WithoutPassword, error)
	SignIn(ctx context.Context, sess domain.Session, username, password string) (domain.Session, domain.WithoutPassword, string, error)
	SignOut(sess domain.Session) domain.Session
	IsSignedIn(sess domain.Session) bool
	CurrentUser(ctx context.Context, sess domain.Session) (domain.Session, domain.WithoutPassword, error)
	Buy(ctx context.Context, sess domain.Session, coin, usdAmount, coinAmount string) (domain.Session, domain.WithoutPassword, error)
	Sell(ctx context.Context, sess domain.Session, coin, usdAmount, coinAmount string) (domain.Session, domain.WithoutPassword, error)
	CurrentPrices(ctx context.Context) domain.PriceSnapshot
	HistoricalPrices(ctx context.Context, coin string, days int) ([]domain.PricePoint, error)
}

// Handler facilitates exchange delivery layer logic.
type Handler struct {
	service  Service
	sessions *sessionrepo.RepoMem
}

// NewHandler returns an exchange handler.
func NewHandler(s Service, sessions *sessionrepo.RepoMem) *Handler {
	return &Handler{
		service:  s,
		sessions: sessions,
	}
}

type signupRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	AgreementAccepted bool   `json:"agreement_accepted"`
}

// SignUp handles http request to create and sign in an account.
// Field validation is left entirely to the core so every failing rule is
// reported at once.
func (h *Handler) SignUp(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req signupRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.Error(err)})

		return
	}

	sess, account, err := h.service.SignUp(ctx, middleware.Session(gctx), req.Username, req.Password, req.AgreementAccepted)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	middleware.SaveSession(gctx, h.sessions, sess)
	gctx.JSON(http.StatusOK, web.Response{Data: accountData(account)})
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignIn handles http sign-in request.
func (h *Handler) SignIn(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req signinRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.Error(err)})

		return
	}

	sess, account, notice, err := h.service.SignIn(ctx, middleware.Session(gctx), req.Username, req.Password)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	middleware.SaveSession(gctx, h.sessions, sess)
	gctx.JSON(http.StatusOK, web.Response{Data: accountData(account), Notice: notice})
}

// SignOut handles http sign-out request.
func (h *Handler) SignOut(gctx *gin.Context) {
	h.service.SignOut(middleware.Session(gctx))

	middleware.DeleteSession(gctx, h.sessions)
	gctx.JSON(http.StatusOK, web.Response{Notice: "signed out"})
}

// Me handles http request for the signed-in user's account data.
func (h *Handler) Me(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	sess, account, err := h.service.CurrentUser(ctx, middleware.Session(gctx))
	middleware.SaveSession(gctx, h.sessions, sess)

	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData(account)})
}

type tradeRequest struct {
	Coin       string `json:"coin" binding:"required,coin"`
	USDAmount  string `json:"usd_amount" binding:"required"`
	CoinAmount string `json:"coin_amount" binding:"required"`
}

// Buy handles http request to buy a coin.
func (h *Handler) Buy(gctx *gin.Context) {
	h.trade(gctx, h.service.Buy)
}

// Sell handles http request to sell a coin.
func (h *Handler) Sell(gctx *gin.Context) {
	h.trade(gctx, h.service.Sell)
}

func (h *Handler) trade(
	gctx *gin.Context,
	op func(ctx context.Context, sess domain.Session, coin, usdAmount, coinAmount string) (domain.Session, domain.WithoutPassword, error),
) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req tradeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Errors: web.GetErrorsMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.Error(err)})

		return
	}

	sess, account, err := op(ctx, middleware.Session(gctx), req.Coin, req.USDAmount, req.CoinAmount)
	middleware.SaveSession(gctx, h.sessions, sess)

	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData(account)})
}

// Prices handles http request for the current price snapshot.
func (h *Handler) Prices(gctx *gin.Context) {
	snapshot := h.service.CurrentPrices(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: snapshot})
}

// History handles http request for a coin's daily closing prices.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	days := 30
	if v := gctx.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.JSONError{Error: "days must be a positive integer"}})
			return
		}

		days = parsed
	}

	points, err := h.service.HistoricalPrices(ctx, gctx.Param("coin"), days)
	if err != nil {
		h.renderError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: points})
}

// renderError maps core errors onto HTTP statuses.
func (h *Handler) renderError(gctx *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Errors: ve.Failures})
		return
	}

	switch {
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrInvalidCredentials):
		gctx.JSON(http.StatusUnauthorized, web.Response{Error: web.Error(err)})
	case errors.Is(err, domain.ErrUsernameAlreadyExists):
		gctx.JSON(http.StatusConflict, web.Response{Error: web.Error(err)})
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Response{Error: web.Error(err)})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		gctx.JSON(http.StatusBadGateway, web.Response{Error: web.Error(domain.ErrUpstreamUnavailable)})
	case errors.Is(err, domain.ErrStorageUnavailable):
		gctx.JSON(http.StatusInternalServerError, web.Response{Error: web.Error(domain.ErrStorageUnavailable)})
	default:
		gctx.JSON(http.StatusInternalServerError, web.Response{Error: web.Error(errorspkg.ErrInternal)})
	}
}

// accountData wraps account payloads the way every handler renders them.
func accountData(account domain.WithoutPassword) any {
	return struct {
		Account domain.WithoutPassword `json:"account"`
	}{Account: account}
}
