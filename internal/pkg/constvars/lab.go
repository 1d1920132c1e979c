package constvars

// Lab backend resource paths
const (
	ResourceTestBookings = "/test-bookings"
	ResourceReports      = "/reports"
	ResourceTests        = "/tests"
	ResourceLogin        = "/login"
	ResourceLogout       = "/logout"
	ResourceCurrentUser  = "/user"
)

// Booking sub-resources
const (
	PathMarkSampleCollected = "mark-sample-collected"
	PathMarkProcessing      = "mark-processing"
	PathMarkReviewed        = "mark-reviewed"
	PathMarkCompleted       = "mark-completed"
	PathCancel              = "cancel"
	PathReports             = "reports"
	PathSubmit              = "submit"
	PathDownload            = "download"
	PathNotify              = "notify"
)

const (
	QueryParamStatus        = "status"
	QueryParamTestBookingID = "test_booking_id"
	QueryParamTab           = "tab"
)

// Resource names used in error messages
const (
	LabResourceBooking  = "test booking"
	LabResourceReport   = "test report"
	LabResourceTest     = "test"
	LabResourceSession  = "session"
	LabResourceDocument = "report document"
)

// Backend JSON envelope
const (
	LabEnvelopeDataKey    = "data"
	LabEnvelopeMessageKey = "message"
)

const (
	ReportNoResultsPlaceholder = "No test results available for this report."
	ReportArchiveObjectFormat  = "reports/%d/%s.pdf"
	ReportDownloadFileFormat   = "report-%d.pdf"
	ReportTimestampFormat      = "20060102T150405Z"
)

// Result flags shown next to a report value
const (
	ResultFlagCriticalLow  = "critical_low"
	ResultFlagLow          = "low"
	ResultFlagNormal       = "normal"
	ResultFlagHigh         = "high"
	ResultFlagCriticalHigh = "critical_high"
)
