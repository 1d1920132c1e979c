package main

import (
	"fmt"
	"medilabx-service/internal/pkg/dto/requests"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) bookCommand() *cobra.Command {
	var (
		request    requests.CreateBooking
		doctorID   int64
		integrated bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a test for a patient",
		Long: `Book a test for a patient.

With --integrated the booking is also marked collected and moved to
processing; the command stops at the first step the lab backend rejects.`,
		Example: `  labctl book --patient 7 --test 3 --delivery email
  labctl book --patient 7 --test 3 --doctor 2 --delivery print --integrated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if doctorID > 0 {
				request.DoctorID = &doctorID
			}
			ctx := c.requestContext(cmd)

			if !integrated {
				booking, err := c.samples.CreateBooking(ctx, &request)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Booking #%d created (%s)", booking.ID, booking.Status)))
				return nil
			}

			result, err := c.samples.RunIntegratedWorkflow(ctx, &request)
			if err != nil {
				return err
			}
			if len(result.CompletedSteps) > 0 {
				fmt.Fprintf(c.out, "Completed steps: %s\n", strings.Join(result.CompletedSteps, ", "))
			}
			if result.Error != "" {
				fmt.Fprintln(c.out, renderBanner(result.Error))
				return errReported
			}
			fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Booking #%d is %s", result.Booking.ID, result.Booking.Status)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&request.PatientID, "patient", 0, "patient id")
	cmd.Flags().Int64Var(&request.TestID, "test", 0, "test id")
	cmd.Flags().Int64Var(&doctorID, "doctor", 0, "referring doctor id")
	cmd.Flags().StringVar(&request.Notes, "notes", "", "booking notes")
	cmd.Flags().StringVar(&request.DeliveryMethod, "delivery", "", "email, sms, in_person or print")
	cmd.Flags().BoolVar(&integrated, "integrated", false, "book, collect and start processing in one go")
	return cmd
}
