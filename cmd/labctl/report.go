package main

import (
	"fmt"
	"medilabx-service/internal/pkg/dto/requests"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Enter, view and deliver test reports",
	}
	cmd.AddCommand(
		c.reportFormCommand(),
		c.reportSaveCommand(),
		c.reportViewCommand(),
		c.reportDownloadCommand(),
		c.reportNotifyCommand(),
	)
	return cmd
}

func (c *cli) reportFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form <booking_id>",
		Short: "Show the parameters to fill in for a booking in processing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := parseID("booking_id", args[0])
			if err != nil {
				return err
			}

			form, err := c.reports.OpenReportForm(c.requestContext(cmd), bookingID)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderReportForm(form))
			return nil
		},
	}
}

func (c *cli) reportSaveCommand() *cobra.Command {
	var (
		results []string
		notes   string
	)

	cmd := &cobra.Command{
		Use:     "save <booking_id>",
		Short:   "Submit the results of a booking in processing",
		Example: `  labctl report save 42 --result 1=14.2 --result "2=7.1 mmol/L" --notes "hemolysed"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := parseID("booking_id", args[0])
			if err != nil {
				return err
			}

			request := &requests.SubmitReport{TechnicianNotes: notes}
			for _, raw := range results {
				result, err := parseResult(raw)
				if err != nil {
					return err
				}
				request.TestResults = append(request.TestResults, result)
			}

			report, err := c.reports.SaveReport(c.requestContext(cmd), bookingID, request)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Report #%d %s", report.ID, report.Status)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&results, "result", nil, "parameter_id=value[ unit], repeatable")
	cmd.Flags().StringVar(&notes, "notes", "", "technician notes")
	return cmd
}

// parseResult reads "<parameter_id>=<value>[ <unit>]".
func parseResult(raw string) (requests.TestResultInput, error) {
	id, rest, ok := strings.Cut(raw, "=")
	if !ok {
		return requests.TestResultInput{}, fmt.Errorf("result %q is not parameter_id=value", raw)
	}

	parameterID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return requests.TestResultInput{}, fmt.Errorf("result %q has no numeric parameter id", raw)
	}

	value, unit, _ := strings.Cut(strings.TrimSpace(rest), " ")
	return requests.TestResultInput{
		ParameterID: parameterID,
		Value:       value,
		Unit:        strings.TrimSpace(unit),
	}, nil
}

func (c *cli) reportViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <report_id>",
		Short: "Show a report with flagged results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := parseID("report_id", args[0])
			if err != nil {
				return err
			}

			view, err := c.reports.GetReportView(c.requestContext(cmd), reportID)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderReportView(view))
			return nil
		},
	}
}

func (c *cli) reportDownloadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <report_id>",
		Short: "Download the report PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := parseID("report_id", args[0])
			if err != nil {
				return err
			}

			document, err := c.reports.DownloadReport(c.requestContext(cmd), reportID)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = document.FileName
			}
			if dir := filepath.Dir(path); dir != "." {
				err = os.MkdirAll(dir, 0o755)
				if err != nil {
					return err
				}
			}
			err = os.WriteFile(path, document.Content, 0o644)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Saved %s (%d bytes)", path, len(document.Content))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: report-<id>.pdf)")
	return cmd
}

func (c *cli) reportNotifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notify <report_id>",
		Short: "Ask the lab backend to notify the patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := parseID("report_id", args[0])
			if err != nil {
				return err
			}

			err = c.reports.NotifyPatient(c.requestContext(cmd), reportID)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderSuccess("Patient notified"))
			return nil
		},
	}
}
