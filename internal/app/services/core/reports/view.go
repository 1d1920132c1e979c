package reports

import (
	"fmt"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/responses"
	"strings"

	"github.com/shopspring/decimal"
)

// BuildView renders a report for reading. test may be nil when the template
// could not be resolved; rows then carry only what the report itself holds.
func BuildView(report *models.TestReport, test *models.Test) *responses.ReportView {
	view := &responses.ReportView{
		ReportID:        report.ID,
		BookingID:       report.TestBookingID,
		Status:          string(report.Status),
		TechnicianNotes: report.TechnicianNotes,
		Rows:            make([]responses.ReportViewRow, 0, len(report.TestResults)),
		SubmittedAt:     report.SubmittedAt,
		ReviewedAt:      report.ReviewedAt,
		ValidatedAt:     report.ValidatedAt,
	}
	if test != nil {
		view.TestName = test.Name
	}
	if len(report.TestResults) == 0 {
		view.Placeholder = constvars.ReportNoResultsPlaceholder
		return view
	}

	parameters := map[int64]models.TestParameter{}
	if test != nil {
		for _, parameter := range test.Parameters {
			if _, seen := parameters[parameter.ID]; !seen {
				parameters[parameter.ID] = parameter
			}
		}
	}

	for _, result := range report.TestResults {
		parameter, known := parameters[result.ParameterID]
		row := responses.ReportViewRow{
			ParameterID: result.ParameterID,
			Name:        parameter.Name,
			Value:       result.Value,
			Unit:        result.Unit,
			NormalRange: parameter.NormalRange,
		}
		if !known {
			row.Name = fmt.Sprintf("Parameter %d", result.ParameterID)
		}
		if row.Unit == "" {
			row.Unit = parameter.Unit
		}
		if known {
			row.Flag = Flag(result.Value, parameter)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Flag classifies a numeric value against the parameter's critical bounds and
// its "low-high" normal range. Non-numeric values and unparseable ranges give
// an empty flag.
func Flag(value string, parameter models.TestParameter) string {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return ""
	}

	if parameter.CriticalLow != nil && v.LessThan(decimal.NewFromFloat(*parameter.CriticalLow)) {
		return constvars.ResultFlagCriticalLow
	}
	if parameter.CriticalHigh != nil && v.GreaterThan(decimal.NewFromFloat(*parameter.CriticalHigh)) {
		return constvars.ResultFlagCriticalHigh
	}

	low, high, ok := parseRange(parameter.NormalRange)
	if !ok {
		return ""
	}
	switch {
	case v.LessThan(low):
		return constvars.ResultFlagLow
	case v.GreaterThan(high):
		return constvars.ResultFlagHigh
	default:
		return constvars.ResultFlagNormal
	}
}

func parseRange(normalRange string) (decimal.Decimal, decimal.Decimal, bool) {
	lowText, highText, found := strings.Cut(strings.TrimSpace(normalRange), "-")
	if !found {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	low, err := decimal.NewFromString(strings.TrimSpace(lowText))
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	// ranges may carry a trailing unit ("13.5-17.5 g/dL")
	highFields := strings.Fields(highText)
	if len(highFields) == 0 {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	high, err := decimal.NewFromString(highFields[0])
	if err != nil || high.LessThan(low) {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return low, high, true
}
