package http

import (
	"campus-assistant/internal/chat"
	pkgErrors "campus-assistant/pkg/errors"
	"campus-assistant/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "session not found")
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message is empty")
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
