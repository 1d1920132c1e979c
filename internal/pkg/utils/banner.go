package utils

import (
	"errors"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
)

// BannerMessage renders an operator-facing failure line: the fixed prefix of the
// action followed by the lab server's own message, or a fallback when the
// server did not send one.
func BannerMessage(prefix string, err error) string {
	if err == nil {
		return ""
	}

	message := constvars.BannerFallbackMessage
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		switch {
		case customErr.ServerMessage != "":
			message = customErr.ServerMessage
		case !customErr.FromLabBackend && customErr.StatusCode < constvars.StatusInternalServerError && customErr.ClientMessage != "":
			// locally rejected actions explain themselves
			message = customErr.ClientMessage
		}
	}
	return prefix + ": " + message
}
