package responses

import "time"

type ReportForm struct {
	BookingID       int64             `json:"booking_id"`
	ReportID        *int64            `json:"report_id,omitempty"`
	TestID          int64             `json:"test_id"`
	TestName        string            `json:"test_name"`
	Entries         []ReportFormEntry `json:"entries"`
	TechnicianNotes string            `json:"technician_notes,omitempty"`
}

type ReportFormEntry struct {
	ParameterID int64  `json:"parameter_id"`
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	NormalRange string `json:"normal_range,omitempty"`
	Value       string `json:"value"`
}

type ReportView struct {
	ReportID        int64           `json:"report_id"`
	BookingID       int64           `json:"booking_id"`
	Status          string          `json:"status"`
	TestName        string          `json:"test_name,omitempty"`
	TechnicianNotes string          `json:"technician_notes,omitempty"`
	Rows            []ReportViewRow `json:"rows"`
	Placeholder     string          `json:"placeholder,omitempty"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	ValidatedAt     *time.Time      `json:"validated_at,omitempty"`
}

type ReportViewRow struct {
	ParameterID int64  `json:"parameter_id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Unit        string `json:"unit,omitempty"`
	NormalRange string `json:"normal_range,omitempty"`
	Flag        string `json:"flag,omitempty"`
}

type ReportDocument struct {
	ReportID      int64  `json:"report_id"`
	FileName      string `json:"file_name"`
	ContentType   string `json:"content_type"`
	Content       []byte `json:"-"`
	ArchiveObject string `json:"archive_object,omitempty"`
}
