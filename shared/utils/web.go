package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/diskominfo-bogor/sipmang/shared/errors"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes err as {"error": message} using the status carried by
// the error, or as a generic 500 when the error is unexpected. Internal
// causes are logged, never sent to the caller.
func WriteError(w http.ResponseWriter, err error) {
	WriteErrorWithKey(w, err, "error", "Terjadi kesalahan pada server")
}

// WriteErrorWithKey is WriteError with a configurable JSON key and generic
// message, for endpoints whose error shape differs.
func WriteErrorWithKey(w http.ResponseWriter, err error, key, genericMsg string) {
	statusCode := errors.StatusCode(err)
	message := genericMsg
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		message = e.Message
	} else {
		logger.Log.Error("internal error", "error", err)
	}
	WriteJSON(w, statusCode, map[string]string{key: message})
}

// DecodeValidate decodes a JSON body into body and checks its
// `validate` struct tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}
