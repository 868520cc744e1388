package handler

import (
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

// userMessage maps an API client error onto the text shown to the admin.
// Backend errors already carry a user-facing Indonesian message; transport
// failures fall back to the generic one.
func userMessage(err error) string {
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		return e.Message
	}
	return "Terjadi kesalahan pada server"
}
