package utils

import (
	"fmt"
	"medilabx-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateReportArchiveObjectName(reportID int64, at time.Time) string {
	return fmt.Sprintf(constvars.ReportArchiveObjectFormat, reportID, at.UTC().Format(constvars.ReportTimestampFormat))
}

func GenerateReportFileName(reportID int64) string {
	return fmt.Sprintf(constvars.ReportDownloadFileFormat, reportID)
}
