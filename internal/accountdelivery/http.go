// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/errorspkg"
	"github.com/accountd/accountd/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, ownerID, initialBalance int64) (domain.Account, error)
	Close(ctx context.Context, userID int64, accountNumber string) (domain.Account, error)
	List(ctx context.Context, ownerID int64) ([]domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return "invalid request"
}

type createRequest struct {
	UserID         int64 `json:"user_id" binding:"required,min=1"`
	InitialBalance int64 `json:"initial_balance" binding:"required,min=100"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	createdAccount, err := h.service.Create(ctx, req.UserID, req.InitialBalance)
	if err != nil {
		switch err {
		case domain.ErrOwnerNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrAccountLimitExceeded:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInitialBalanceTooLow:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{createdAccount}})
}

type closeRequest struct {
	UserID        int64  `json:"user_id" binding:"required,min=1"`
	AccountNumber string `json:"account_number" binding:"required,accnumber"`
}

// Close handles http request to close an account.
func (h *Handler) Close(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req closeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	closedAccount, err := h.service.Close(ctx, req.UserID, req.AccountNumber)
	if err != nil {
		switch err {
		case domain.ErrOwnerNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrUserAccountMismatch:
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		case domain.ErrAccountAlreadyClosed, domain.ErrBalanceNotEmpty:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrLockAcquisitionFailed:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{closedAccount}})
}

type listRequest struct {
	UserID int64 `form:"user_id" binding:"required,min=1"`
}

type listData struct {
	Accounts []domain.Account `json:"accounts"`
}

type listResponse struct {
	Data listData `json:"data,omitempty"`
}

// List handles http request to list the user's accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	accounts, err := h.service.List(ctx, req.UserID)
	if err != nil {
		if err == domain.ErrOwnerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, listResponse{Data: listData{accounts}})
}
