package reports

import (
	"context"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *reportApiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	requester := labapi.NewRequester(server.URL, 5*time.Second, labapi.StaticTokenSource("tkn"), zap.NewNop())
	return NewReportApiClient(requester, zap.NewNop()).(*reportApiClient)
}

func TestReportApiClient_FindReportsByBookingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("test_booking_id"))
		w.Write([]byte(`{"data":[{"id":4,"test_booking_id":12,"status":"draft","test_results":[{"parameter_id":1,"value":"14.2","unit":"g/dL"}]}]}`))
	})

	reports, err := client.FindReportsByBookingID(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, int64(4), reports[0].ID)
	require.Len(t, reports[0].TestResults, 1)
	assert.Equal(t, "14.2", reports[0].TestResults[0].Value)
}

func TestReportApiClient_CreateDraftAndSubmit(t *testing.T) {
	var submitted requests.SubmitReport
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/test-bookings/12/reports":
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":8,"test_booking_id":12,"status":"draft","test_results":[]}`))
		case "/reports/8/submit":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
			w.Write([]byte(`{"data":{"id":8,"test_booking_id":12,"status":"submitted"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	draft, err := client.CreateDraftReport(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(8), draft.ID)

	report, err := client.SubmitReport(context.Background(), draft.ID, &requests.SubmitReport{
		TestResults:     []requests.TestResultInput{{ParameterID: 1, Value: "14.2", Unit: "g/dL"}},
		TechnicianNotes: "haemolysed",
	})
	require.NoError(t, err)
	assert.Equal(t, "submitted", string(report.Status))
	require.Len(t, submitted.TestResults, 1)
	assert.Equal(t, "haemolysed", submitted.TechnicianNotes)
}

func TestReportApiClient_CreateDraftWithoutID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"created"}`))
	})

	_, err := client.CreateDraftReport(context.Background(), 12)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
}

func TestReportApiClient_DownloadReport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/8/download", r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 body"))
	})

	document, err := client.DownloadReport(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "report-8.pdf", document.FileName)
	assert.Equal(t, "application/pdf", document.ContentType)
	assert.Equal(t, []byte("%PDF-1.4 body"), document.Content)
}

func TestReportApiClient_NotifyPatient(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reports/8/notify", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.NotifyPatient(context.Background(), 8))
	assert.Equal(t, 1, calls)
}
