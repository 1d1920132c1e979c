package main

import (
	"errors"
	"fmt"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timeLayout = "2006-01-02 15:04"

var (
	bannerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Faint(true)

	flagStyles = map[string]lipgloss.Style{
		constvars.ResultFlagCriticalLow:  bannerStyle,
		constvars.ResultFlagCriticalHigh: bannerStyle,
		constvars.ResultFlagLow:          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		constvars.ResultFlagHigh:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
)

func renderBanner(message string) string {
	return bannerStyle.Render(message)
}

func renderSuccess(message string) string {
	return successStyle.Render(message)
}

// renderError prefers the lab backend's own message and lists per-field
// validation failures underneath.
func renderError(err error) string {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return renderBanner("Error: " + err.Error())
	}

	message := customErr.ServerMessage
	if message == "" {
		message = customErr.ClientMessage
	}

	lines := []string{renderBanner("Error: " + message)}
	fields := make([]string, 0, len(customErr.Fields))
	for field := range customErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("  %s: %s", field, customErr.Fields[field]))
	}
	return strings.Join(lines, "\n")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderTabs(tabs []responses.Tab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Active {
			parts = append(parts, activeTabStyle.Render(tab.Label))
			continue
		}
		parts = append(parts, tabStyle.Render(tab.Label))
	}
	return strings.Join(parts, "  ")
}

func renderBoard(snapshot *responses.BoardSnapshot) string {
	lines := []string{renderTabs(snapshot.Tabs)}
	if snapshot.Error != "" {
		lines = append(lines, renderBanner(snapshot.Error))
	}

	if len(snapshot.Rows) == 0 {
		lines = append(lines, mutedStyle.Render("No samples in this tab"))
		return strings.Join(lines, "\n")
	}

	t := newTable("ID", "Patient", "Test", "Doctor", "Status", "Actions")
	for _, row := range snapshot.Rows {
		t.Row(
			strconv.FormatInt(row.BookingID, 10),
			row.PatientName,
			row.TestName,
			row.DoctorName,
			string(row.Status),
			strings.Join(row.Actions, ", "),
		)
	}
	lines = append(lines, t.String())
	return strings.Join(lines, "\n")
}

// printBoard writes the board and turns an action banner into a failed exit.
func (c *cli) printBoard(snapshot *responses.BoardSnapshot) error {
	fmt.Fprintln(c.out, renderBoard(snapshot))
	if snapshot.Error != "" {
		return errReported
	}
	return nil
}

func renderReportForm(form *responses.ReportForm) string {
	title := fmt.Sprintf("Booking #%d: %s", form.BookingID, form.TestName)
	if form.ReportID != nil {
		title += fmt.Sprintf(" (report #%d)", *form.ReportID)
	}

	t := newTable("Parameter", "Name", "Value", "Unit", "Normal range")
	for _, entry := range form.Entries {
		t.Row(
			strconv.FormatInt(entry.ParameterID, 10),
			entry.Name,
			entry.Value,
			entry.Unit,
			entry.NormalRange,
		)
	}

	lines := []string{headerStyle.Render(title), t.String()}
	if form.TechnicianNotes != "" {
		lines = append(lines, "Notes: "+form.TechnicianNotes)
	}
	return strings.Join(lines, "\n")
}

func renderReportView(view *responses.ReportView) string {
	title := fmt.Sprintf("Report #%d for booking #%d: %s", view.ReportID, view.BookingID, view.Status)
	if view.TestName != "" {
		title += " (" + view.TestName + ")"
	}
	lines := []string{headerStyle.Render(title)}

	if view.Placeholder != "" {
		lines = append(lines, mutedStyle.Render(view.Placeholder))
	} else {
		t := newTable("Parameter", "Value", "Unit", "Normal range", "Flag")
		for _, row := range view.Rows {
			flag := row.Flag
			if style, ok := flagStyles[flag]; ok {
				flag = style.Render(flag)
			}
			t.Row(row.Name, row.Value, row.Unit, row.NormalRange, flag)
		}
		lines = append(lines, t.String())
	}

	if view.TechnicianNotes != "" {
		lines = append(lines, "Notes: "+view.TechnicianNotes)
	}
	if view.SubmittedAt != nil {
		lines = append(lines, "Submitted: "+view.SubmittedAt.Local().Format(timeLayout))
	}
	if view.ValidatedAt != nil {
		lines = append(lines, "Validated: "+view.ValidatedAt.Local().Format(timeLayout))
	}
	return strings.Join(lines, "\n")
}
