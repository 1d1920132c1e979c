package reports

import (
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/responses"
)

// Prefill lays the template parameters out as form entries, copying the value
// of the first result recorded for each parameter. Parameters without a result
// start empty.
func Prefill(test *models.Test, existing *models.TestReport) []responses.ReportFormEntry {
	entries := make([]responses.ReportFormEntry, 0, len(test.Parameters))
	for _, parameter := range test.Parameters {
		entry := responses.ReportFormEntry{
			ParameterID: parameter.ID,
			Name:        parameter.Name,
			Unit:        parameter.Unit,
			NormalRange: parameter.NormalRange,
		}
		if result, ok := firstResult(existing, parameter.ID); ok {
			entry.Value = result.Value
			if result.Unit != "" {
				entry.Unit = result.Unit
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func firstResult(report *models.TestReport, parameterID int64) (models.TestResult, bool) {
	if report == nil {
		return models.TestResult{}, false
	}
	for _, result := range report.TestResults {
		if result.ParameterID == parameterID {
			return result, true
		}
	}
	return models.TestResult{}, false
}
