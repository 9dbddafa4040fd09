package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/service"
)

// retryAfterSeconds is advertised on lock_unavailable responses
const retryAfterSeconds = 1

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// amountFields are reported as invalid_amount rather than invalid_request
var amountFields = map[string]bool{
	"amount":          true,
	"initial_balance": true,
}

// validateBody checks body against its validate tags
func validateBody(body any) *service.ServiceError {
	if body == nil || reflect.ValueOf(body).IsNil() {
		return &service.ServiceError{Code: service.ErrCodeInvalidRequest, Message: "request body is required"}
	}

	err := validate.Struct(body)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &service.ServiceError{Code: service.ErrCodeInvalidRequest, Message: err.Error(), Err: err}
	}

	code := service.ErrCodeInvalidRequest
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if amountFields[fe.Field()] {
			code = service.ErrCodeInvalidAmount
		}
		messages = append(messages, fieldErrorMessage(fe))
	}

	return &service.ServiceError{Code: code, Message: strings.Join(messages, "; ")}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric":
		return fe.Field() + " must contain only digits"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// httpStatus maps a ledger error code to its response status. Retryable
// errors are answered with 503 by errorBody.
func httpStatus(code string) int {
	switch code {
	case service.ErrCodeUserNotFound, service.ErrCodeAccountNotFound, service.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case service.ErrCodeInsufficientBalance:
		return http.StatusPaymentRequired
	case service.ErrCodeInvalidAmount, service.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case service.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// errorBody converts err into the status and body sent to the client. Errors
// that are not ledger errors are logged and hidden behind internal_error.
func (h *Handler) errorBody(operation string, err error) (int, api.Error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("unexpected error", "operation", operation, "error", err)
		return http.StatusInternalServerError, internalErrorBody
	}

	status := httpStatus(svcErr.Code)
	if svcErr.Retryable() {
		status = http.StatusServiceUnavailable
	}
	h.logger.Info("operation rejected", "operation", operation, "status", status, "error_code", svcErr.Code)
	return status, api.Error{Error: api.ErrorCode(svcErr.Code), Message: svcErr.Message}
}

var internalErrorBody = api.Error{Error: api.ErrorCodeInternalError, Message: "internal error"}

// internalError is the fallback for a status the operation does not document
func (h *Handler) internalError(operation string, status int, body api.Error) api.InternalErrorJSONResponse {
	if status != http.StatusInternalServerError {
		h.logger.Error("no response declared for status",
			"operation", operation,
			"status", status,
			"error_code", body.Error,
		)
	}
	return api.InternalErrorJSONResponse(internalErrorBody)
}

func serviceUnavailable(body api.Error) api.ServiceUnavailableJSONResponse {
	return api.ServiceUnavailableJSONResponse{
		Body:    body,
		Headers: api.ServiceUnavailableResponseHeaders{RetryAfter: retryAfterSeconds},
	}
}

func toTransactionResponse(txn *models.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		AccountNumber:     txn.AccountNumber,
		TransactionResult: api.TransactionResult(txn.Result),
		TransactionId:     txn.TransactionID,
		Amount:            txn.Amount,
		TransactedAt:      txn.TransactedAt,
	}
}
