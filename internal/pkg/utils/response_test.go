package utils

import (
	"errors"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error In Development", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.APP_ENV_DEVELOPMENT)
		w := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), w, exceptions.ErrReportNotEditable(nil, 9, "booked"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, w.Header().Get(constvars.HeaderContentType))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientReportNotEditable, body["message"])
		assert.NotEmpty(t, body["dev_message"])
	})

	t.Run("Dev Details Hidden In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.APP_ENV_PRODUCTION)
		w := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), w, exceptions.ErrReportNotEditable(nil, 9, "booked"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotContains(t, body, "dev_message")
		assert.NotContains(t, body, "locations")
	})

	t.Run("Plain Error", func(t *testing.T) {
		w := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), w, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})

	t.Run("Validation Fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := exceptions.ErrInputValidation(ValidateStruct(&struct {
			Email string `json:"email" validate:"required"`
		}{}))

		BuildErrorResponse(zap.NewNop(), w, err)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"email is required"`)
	})
}

func TestBuildBinaryResponse(t *testing.T) {
	w := httptest.NewRecorder()

	BuildBinaryResponse(w, "", "report-9.pdf", []byte("%PDF"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constvars.MIMEOctetStream, w.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, `attachment; filename="report-9.pdf"`, w.Header().Get(constvars.HeaderContentDisposition))
	assert.Equal(t, "%PDF", w.Body.String())
}
