package utils

import (
	"errors"
	"medilabx-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBannerMessage(t *testing.T) {
	prefix := "Failed to mark sample as collected"

	t.Run("No Error", func(t *testing.T) {
		assert.Empty(t, BannerMessage(prefix, nil))
	})

	t.Run("Server Message Wins", func(t *testing.T) {
		err := exceptions.ErrLabCallFailed(422, "Sample already collected", "POST", "/test-bookings/1/mark-sample-collected")
		assert.Equal(t, prefix+": Sample already collected", BannerMessage(prefix, err))
	})

	t.Run("Server Message Survives Wrapping", func(t *testing.T) {
		backendErr := exceptions.ErrLabCallFailed(500, "Database unavailable", "GET", "/test-bookings")
		err := exceptions.ErrServerProcess(backendErr)
		assert.Equal(t, prefix+": Database unavailable", BannerMessage(prefix, err))
	})

	t.Run("Backend Error Without Message", func(t *testing.T) {
		err := exceptions.ErrLabCallFailed(422, "", "POST", "/test-bookings/1/cancel")
		assert.Equal(t, prefix+": Unknown error", BannerMessage(prefix, err))
	})

	t.Run("Local Rejection Explains Itself", func(t *testing.T) {
		err := exceptions.ErrInvalidTransition(nil, "collect", "completed")
		assert.Equal(t, prefix+": this action is not available for the sample's current status", BannerMessage(prefix, err))
	})

	t.Run("Network Failure", func(t *testing.T) {
		err := exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
		assert.Equal(t, prefix+": Unknown error", BannerMessage(prefix, err))
	})

	t.Run("Plain Error", func(t *testing.T) {
		assert.Equal(t, prefix+": Unknown error", BannerMessage(prefix, errors.New("boom")))
	})
}
