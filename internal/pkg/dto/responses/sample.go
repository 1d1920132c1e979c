package responses

import (
	"medilabx-service/internal/app/models"
	"time"
)

type BoardSnapshot struct {
	Tab     string      `json:"tab"`
	Tabs    []Tab       `json:"tabs"`
	Rows    []SampleRow `json:"rows"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
}

type Tab struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type SampleRow struct {
	BookingID      int64                `json:"booking_id"`
	PatientName    string               `json:"patient_name"`
	TestName       string               `json:"test_name"`
	DoctorName     string               `json:"doctor_name,omitempty"`
	Status         models.BookingStatus `json:"status"`
	Notes          string               `json:"notes,omitempty"`
	DeliveryMethod string               `json:"delivery_method,omitempty"`
	CreatedAt      *time.Time           `json:"created_at,omitempty"`
	Actions        []string             `json:"actions"`
	CanEditReport  bool                 `json:"can_edit_report"`
}

type IntegratedWorkflow struct {
	Booking        *models.TestBooking `json:"booking,omitempty"`
	CompletedSteps []string            `json:"completed_steps"`
	FailedStep     string              `json:"failed_step,omitempty"`
	Error          string              `json:"error,omitempty"`
}
