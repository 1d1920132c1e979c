package models

import "time"

type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusValidated ReportStatus = "validated"
	ReportStatusRejected  ReportStatus = "rejected"
)

type TestReport struct {
	ID              int64        `json:"id"`
	TestBookingID   int64        `json:"test_booking_id"`
	Status          ReportStatus `json:"status"`
	TechnicianNotes string       `json:"technician_notes,omitempty"`
	TestResults     []TestResult `json:"test_results"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
	SubmittedAt     *time.Time   `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	ValidatedAt     *time.Time   `json:"validated_at,omitempty"`
}

type TestResult struct {
	ParameterID int64  `json:"parameter_id"`
	Value       string `json:"value"`
	Unit        string `json:"unit,omitempty"`
}
