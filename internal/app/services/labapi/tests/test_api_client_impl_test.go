package tests

import (
	"context"
	"medilabx-service/internal/app/services/labapi"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTestApiClient_FindTestByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tests/3", r.URL.Path)
		w.Write([]byte(`{"data":{"id":3,"name":"Complete Blood Count","code":"CBC","price":"25.50","parameters":[
			{"id":1,"name":"Haemoglobin","unit":"g/dL","normal_range":"13-17","critical_low":7,"critical_high":20},
			{"id":2,"name":"WBC","unit":"10^9/L","normal_range":"4-11"}]}}`))
	}))
	defer server.Close()

	requester := labapi.NewRequester(server.URL, time.Second, labapi.StaticTokenSource("tkn"), zap.NewNop())
	client := NewTestApiClient(requester, zap.NewNop())

	test, err := client.FindTestByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "CBC", test.Code)
	assert.True(t, test.Price.Equal(decimal.RequireFromString("25.5")))
	require.Len(t, test.Parameters, 2)
	require.NotNil(t, test.Parameters[0].CriticalLow)
	assert.Equal(t, 7.0, *test.Parameters[0].CriticalLow)
	assert.Nil(t, test.Parameters[1].CriticalHigh)
}

func TestTestApiClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Test not found"}`))
	}))
	defer server.Close()

	requester := labapi.NewRequester(server.URL, time.Second, labapi.StaticTokenSource("tkn"), zap.NewNop())
	client := NewTestApiClient(requester, zap.NewNop())

	_, err := client.FindTestByID(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
