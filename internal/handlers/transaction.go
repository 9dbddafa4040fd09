package handlers

import (
	"context"
	"net/http"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/service"
)

// UseBalance handles POST /transaction/use
func (h *Handler) UseBalance(
	ctx context.Context,
	request api.UseBalanceRequestObject,
) (api.UseBalanceResponseObject, error) {
	if verr := validateBody(request.Body); verr != nil {
		return h.handleUseBalanceError(verr)
	}
	body := request.Body

	txn, err := h.transactionService.UseBalance(ctx, body.UserId, body.AccountNumber, body.Amount)
	if err != nil {
		h.recordFailure(ctx, models.TransactionTypeUse, body.AccountNumber, body.Amount, err)
		return h.handleUseBalanceError(err)
	}

	return api.UseBalance200JSONResponse(toTransactionResponse(txn)), nil
}

// CancelBalance handles POST /transaction/cancel
func (h *Handler) CancelBalance(
	ctx context.Context,
	request api.CancelBalanceRequestObject,
) (api.CancelBalanceResponseObject, error) {
	if verr := validateBody(request.Body); verr != nil {
		return h.handleCancelBalanceError(verr)
	}
	body := request.Body

	txn, err := h.transactionService.CancelBalance(ctx, body.TransactionId, body.AccountNumber, body.Amount)
	if err != nil {
		h.recordFailure(ctx, models.TransactionTypeCancel, body.AccountNumber, body.Amount, err)
		return h.handleCancelBalanceError(err)
	}

	return api.CancelBalance200JSONResponse(toTransactionResponse(txn)), nil
}

// GetTransaction handles GET /transaction/{transactionId}
func (h *Handler) GetTransaction(
	ctx context.Context,
	request api.GetTransactionRequestObject,
) (api.GetTransactionResponseObject, error) {
	txn, err := h.transactionService.GetTransaction(ctx, request.TransactionId)
	if err != nil {
		return h.handleGetTransactionError(err)
	}

	return api.GetTransaction200JSONResponse{
		TransactionId:     txn.TransactionID,
		AccountNumber:     txn.AccountNumber,
		TransactionType:   api.TransactionType(txn.Type),
		TransactionResult: api.TransactionResult(txn.Result),
		Amount:            txn.Amount,
		BalanceSnapshot:   txn.BalanceSnapshot,
		TransactedAt:      txn.TransactedAt,
	}, nil
}

// handleUseBalanceError maps service errors to UseBalance responses
func (h *Handler) handleUseBalanceError(err error) (api.UseBalanceResponseObject, error) {
	status, body := h.errorBody("UseBalance", err)

	switch status {
	case http.StatusBadRequest:
		return api.UseBalance400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusPaymentRequired:
		return api.UseBalance402JSONResponse{PaymentRequiredJSONResponse: api.PaymentRequiredJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.UseBalance404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusUnprocessableEntity:
		return api.UseBalance422JSONResponse{UnprocessableEntityJSONResponse: api.UnprocessableEntityJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.UseBalance503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.UseBalance500JSONResponse{InternalErrorJSONResponse: h.internalError("UseBalance", status, body)}, nil
	}
}

// handleCancelBalanceError maps service errors to CancelBalance responses
func (h *Handler) handleCancelBalanceError(err error) (api.CancelBalanceResponseObject, error) {
	status, body := h.errorBody("CancelBalance", err)

	switch status {
	case http.StatusBadRequest:
		return api.CancelBalance400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.CancelBalance404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusUnprocessableEntity:
		return api.CancelBalance422JSONResponse{UnprocessableEntityJSONResponse: api.UnprocessableEntityJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.CancelBalance503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.CancelBalance500JSONResponse{InternalErrorJSONResponse: h.internalError("CancelBalance", status, body)}, nil
	}
}

// handleGetTransactionError maps service errors to GetTransaction responses
func (h *Handler) handleGetTransactionError(err error) (api.GetTransactionResponseObject, error) {
	status, body := h.errorBody("GetTransaction", err)

	switch status {
	case http.StatusNotFound:
		return api.GetTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.GetTransaction503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.GetTransaction500JSONResponse{InternalErrorJSONResponse: h.internalError("GetTransaction", status, body)}, nil
	}
}

// recordFailure appends the failed attempt to the account's history when the
// ledger rejected it. A failure to record is logged and never replaces cause.
// There is nothing to record against when the account itself is missing.
func (h *Handler) recordFailure(
	ctx context.Context,
	txnType models.TransactionType,
	accountNumber string,
	amount int64,
	cause error,
) {
	svcErr := extractServiceError(cause)
	if svcErr == nil || !svcErr.IsDomain() || svcErr.Code == service.ErrCodeAccountNotFound {
		return
	}

	record := h.transactionService.RecordFailedUse
	if txnType == models.TransactionTypeCancel {
		record = h.transactionService.RecordFailedCancel
	}

	txn, err := record(ctx, accountNumber, amount)
	if err != nil {
		h.logger.Warn("failed to record failed transaction",
			"type", txnType,
			"account_number", accountNumber,
			"amount", amount,
			"cause", svcErr.Code,
			"error", err,
		)
		return
	}

	h.logger.Info("failed transaction recorded",
		"type", txnType,
		"account_number", accountNumber,
		"transaction_id", txn.TransactionID,
		"cause", svcErr.Code,
	)
}
