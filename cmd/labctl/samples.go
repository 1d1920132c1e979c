package main

import (
	"fmt"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/lifecycle"
	"medilabx-service/internal/pkg/dto/requests"
	"strconv"

	"github.com/spf13/cobra"
)

// sourceTabs is the tab a booking sits in before the action, shown again
// after the action so the operator sees the row leave it.
var sourceTabs = map[lifecycle.Action]models.BookingStatus{
	lifecycle.ActionCollect:         models.BookingStatusBooked,
	lifecycle.ActionStartProcessing: models.BookingStatusSampleCollected,
	lifecycle.ActionMarkReviewed:    models.BookingStatusProcessing,
	lifecycle.ActionMarkCompleted:   models.BookingStatusReviewed,
	lifecycle.ActionCancel:          models.BookingStatusBooked,
}

func (c *cli) samplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List samples per status and move them through the lab lifecycle",
	}

	var tab string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the bookings of one status tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := c.samples.GetBoard(c.requestContext(cmd), tab)
			if err != nil {
				return err
			}
			return c.printBoard(snapshot)
		},
	}
	list.Flags().StringVar(&tab, "tab", string(models.BookingStatusBooked), "status tab to show")
	cmd.AddCommand(list)

	for _, action := range lifecycle.Actions {
		cmd.AddCommand(c.transitionCommand(action))
	}
	return cmd
}

func (c *cli) transitionCommand(action lifecycle.Action) *cobra.Command {
	var (
		tab   string
		notes string
	)

	cmd := &cobra.Command{
		Use:   action.Slug() + " <booking_id>",
		Short: action.BannerPrefix(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := parseID("booking_id", args[0])
			if err != nil {
				return err
			}

			snapshot, err := c.samples.TransitionSample(c.requestContext(cmd), tab, bookingID, action.String(), &requests.CancelBooking{Notes: notes})
			if err != nil {
				return err
			}
			return c.printBoard(snapshot)
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(sourceTabs[action]), "status tab shown after the action")
	if action == lifecycle.ActionCancel {
		cmd.Flags().StringVar(&notes, "notes", "", "cancellation notes")
	}
	return cmd
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, raw)
	}
	return id, nil
}
