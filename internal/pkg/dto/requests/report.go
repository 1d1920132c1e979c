package requests

type SubmitReport struct {
	TestResults     []TestResultInput `json:"test_results" validate:"required,min=1,dive"`
	TechnicianNotes string            `json:"technician_notes,omitempty" validate:"max=2000"`
}

type TestResultInput struct {
	ParameterID int64  `json:"parameter_id" validate:"required,gt=0"`
	Value       string `json:"value" validate:"required"`
	Unit        string `json:"unit,omitempty"`
}
