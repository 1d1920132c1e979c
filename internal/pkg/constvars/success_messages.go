package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess        = "successfully login"
	LogoutSuccess       = "successfully logout"
	SessionValidSuccess = "session is valid"

	// Lab workflow messages
	GetSamplesSuccess              = "get samples successfully"
	TransitionSampleSuccess        = "sample status updated successfully"
	CreateBookingSuccess           = "test booking created successfully"
	IntegratedWorkflowSuccess      = "test booking booked, collected and sent to processing"
	GetReportFormSuccess           = "get report form successfully"
	SaveReportSuccess              = "report submitted successfully"
	GetReportSuccess               = "get report successfully"
	NotifyPatientSuccess           = "patient notified successfully"
	CalculatePackageSavingsSuccess = "package savings calculated successfully"
)
