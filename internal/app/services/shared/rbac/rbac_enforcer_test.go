package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBACEnforcer(t *testing.T) {
	authorizer, err := NewEnforcer("/api/v1")
	require.NoError(t, err)

	cases := []struct {
		name    string
		role    string
		method  string
		path    string
		allowed bool
	}{
		{"technician lists samples", "lab_technician", "GET", "/api/v1/samples", true},
		{"technician collects", "lab_technician", "POST", "/api/v1/samples/12/collect", true},
		{"technician saves report", "lab_technician", "PUT", "/api/v1/samples/12/report", true},
		{"technician notifies", "lab_technician", "POST", "/api/v1/reports/3/notify", true},
		{"doctor books", "doctor", "POST", "/api/v1/bookings", true},
		{"doctor downloads", "doctor", "GET", "/api/v1/reports/3/download", true},
		{"doctor cannot transition", "doctor", "POST", "/api/v1/samples/12/cancel", false},
		{"doctor cannot run integrated workflow", "doctor", "POST", "/api/v1/bookings/integrated", false},
		{"patient views report", "patient", "GET", "/api/v1/reports/3", true},
		{"patient cannot list samples", "patient", "GET", "/api/v1/samples", false},
		{"patient cannot notify", "patient", "POST", "/api/v1/reports/3/notify", false},
		{"admin prices packages", "admin", "POST", "/api/v1/test-packages/savings", true},
		{"admin transitions", "admin", "POST", "/api/v1/samples/12/mark-completed", true},
		{"technician cannot price packages", "lab_technician", "POST", "/api/v1/test-packages/savings", false},
		{"unknown role", "guest", "GET", "/api/v1/reports/3", false},
		{"other prefix", "admin", "GET", "/internal/metrics", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := authorizer.Authorize(tc.role, tc.path, tc.method)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
