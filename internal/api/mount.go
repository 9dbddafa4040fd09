package api

import (
	"encoding/json"
	"net/http"
)

// Mount registers the generated routes for ssi on mux. Parameter binding and
// body decoding failures are answered with an invalid_request Error body
// instead of the generated plain-text default, and handler errors become
// internal_error.
func Mount(mux *http.ServeMux, ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) http.Handler {
	strict := NewStrictHandlerWithOptions(ssi, middlewares, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: internalError,
	})

	return HandlerWithOptions(strict, StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: badRequest,
	})
}

func badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
}

func internalError(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	_ = writeJSON(w, status, Error{Error: code, Message: message}) //nolint:errcheck // response already started
}
