package handlers

import (
	"context"
	"net/http"

	"github.com/zerobank/account-ledger/internal/api"
)

// CreateAccount handles POST /account
func (h *Handler) CreateAccount(
	ctx context.Context,
	request api.CreateAccountRequestObject,
) (api.CreateAccountResponseObject, error) {
	if verr := validateBody(request.Body); verr != nil {
		return h.handleCreateAccountError(verr)
	}

	account, err := h.accountService.CreateAccount(ctx, request.Body.UserId, request.Body.InitialBalance)
	if err != nil {
		return h.handleCreateAccountError(err)
	}

	return api.CreateAccount200JSONResponse{
		UserId:        account.UserID,
		AccountNumber: account.AccountNumber,
		RegisteredAt:  account.RegisteredAt,
	}, nil
}

// ListAccounts handles GET /account
func (h *Handler) ListAccounts(
	ctx context.Context,
	request api.ListAccountsRequestObject,
) (api.ListAccountsResponseObject, error) {
	accounts, err := h.accountService.ListAccounts(ctx, request.Params.UserId)
	if err != nil {
		return h.handleListAccountsError(err)
	}

	resp := make(api.ListAccounts200JSONResponse, 0, len(accounts))
	for _, account := range accounts {
		resp = append(resp, api.AccountSummary{
			AccountNumber: account.AccountNumber,
			Balance:       account.Balance,
		})
	}

	return resp, nil
}

// CloseAccount handles DELETE /account
func (h *Handler) CloseAccount(
	ctx context.Context,
	request api.CloseAccountRequestObject,
) (api.CloseAccountResponseObject, error) {
	if verr := validateBody(request.Body); verr != nil {
		return h.handleCloseAccountError(verr)
	}

	account, err := h.accountService.CloseAccount(ctx, request.Body.UserId, request.Body.AccountNumber)
	if err != nil {
		return h.handleCloseAccountError(err)
	}

	resp := api.CloseAccount200JSONResponse{
		UserId:        account.UserID,
		AccountNumber: account.AccountNumber,
	}
	if account.UnregisteredAt != nil {
		resp.UnregisteredAt = *account.UnregisteredAt
	}

	return resp, nil
}

// GetAccount handles GET /account/{id}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	account, err := h.accountService.GetAccount(ctx, request.Id)
	if err != nil {
		return h.handleGetAccountError(err)
	}

	return api.GetAccount200JSONResponse{
		Id:             account.ID,
		UserId:         account.UserID,
		AccountNumber:  account.AccountNumber,
		Status:         api.AccountStatus(account.Status),
		Balance:        account.Balance,
		RegisteredAt:   account.RegisteredAt,
		UnregisteredAt: account.UnregisteredAt,
	}, nil
}

// handleCreateAccountError maps service errors to CreateAccount responses
func (h *Handler) handleCreateAccountError(err error) (api.CreateAccountResponseObject, error) {
	status, body := h.errorBody("CreateAccount", err)

	switch status {
	case http.StatusBadRequest:
		return api.CreateAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.CreateAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusUnprocessableEntity:
		return api.CreateAccount422JSONResponse{UnprocessableEntityJSONResponse: api.UnprocessableEntityJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.CreateAccount503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.CreateAccount500JSONResponse{InternalErrorJSONResponse: h.internalError("CreateAccount", status, body)}, nil
	}
}

// handleListAccountsError maps service errors to ListAccounts responses
func (h *Handler) handleListAccountsError(err error) (api.ListAccountsResponseObject, error) {
	status, body := h.errorBody("ListAccounts", err)

	switch status {
	case http.StatusBadRequest:
		return api.ListAccounts400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ListAccounts404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.ListAccounts503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.ListAccounts500JSONResponse{InternalErrorJSONResponse: h.internalError("ListAccounts", status, body)}, nil
	}
}

// handleCloseAccountError maps service errors to CloseAccount responses
func (h *Handler) handleCloseAccountError(err error) (api.CloseAccountResponseObject, error) {
	status, body := h.errorBody("CloseAccount", err)

	switch status {
	case http.StatusBadRequest:
		return api.CloseAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.CloseAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusUnprocessableEntity:
		return api.CloseAccount422JSONResponse{UnprocessableEntityJSONResponse: api.UnprocessableEntityJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.CloseAccount503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.CloseAccount500JSONResponse{InternalErrorJSONResponse: h.internalError("CloseAccount", status, body)}, nil
	}
}

// handleGetAccountError maps service errors to GetAccount responses
func (h *Handler) handleGetAccountError(err error) (api.GetAccountResponseObject, error) {
	status, body := h.errorBody("GetAccount", err)

	switch status {
	case http.StatusBadRequest:
		return api.GetAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.GetAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusServiceUnavailable:
		return api.GetAccount503JSONResponse{ServiceUnavailableJSONResponse: serviceUnavailable(body)}, nil
	default:
		return api.GetAccount500JSONResponse{InternalErrorJSONResponse: h.internalError("GetAccount", status, body)}, nil
	}
}
