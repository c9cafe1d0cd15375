// Package txndelivery manages delivery layer of balance transactions.
package txndelivery

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

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package txndelivery
type Service interface {
	UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (domain.Transaction, error)
	CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (domain.Transaction, error)
	Get(ctx context.Context, transactionID string) (domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type data struct {
	Transaction domain.Transaction `json:"transaction"`
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

func writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrOwnerNotFound, domain.ErrAccountNotFound, domain.ErrTransactionNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrUserAccountMismatch:
		gctx.JSON(http.StatusForbidden, web.Error(err))
	case domain.ErrAccountAlreadyClosed,
		domain.ErrAmountExceedsBalance,
		domain.ErrTransactionAccountMismatch,
		domain.ErrCancelMustBeFull,
		domain.ErrReversalWindowExpired,
		domain.ErrLockAcquisitionFailed:
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type useRequest struct {
	UserID        int64  `json:"user_id" binding:"required,min=1"`
	AccountNumber string `json:"account_number" binding:"required,accnumber"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// Use handles http request to debit an account.
func (h *Handler) Use(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req useRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	txn, err := h.service.UseBalance(ctx, req.UserID, req.AccountNumber, req.Amount)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{txn}})
}

type cancelRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,len=32,hexadecimal"`
	AccountNumber string `json:"account_number" binding:"required,accnumber"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// Cancel handles http request to reverse a prior debit in full.
func (h *Handler) Cancel(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req cancelRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	txn, err := h.service.CancelBalance(ctx, req.TransactionID, req.AccountNumber, req.Amount)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{txn}})
}

type getRequest struct {
	TransactionID string `uri:"transaction_id" binding:"required,len=32,hexadecimal"`
}

// Get handles http request to query a ledger entry by its transaction id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	txn, err := h.service.Get(ctx, req.TransactionID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{txn}})
}
