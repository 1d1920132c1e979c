package main

import (
	"fmt"
	"medilabx-service/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (c *cli) packageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Test package pricing",
	}

	request := &requests.PackageSavings{}
	savings := &cobra.Command{
		Use:     "savings",
		Short:   "Compare a package price with the sum of its tests",
		Example: `  labctl package savings --regular 150000 --regular 100000 --package 200000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quote, err := c.packages.CalculateSavings(c.requestContext(cmd), request)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Regular total: %s\n", quote.RegularTotal.String())
			fmt.Fprintf(c.out, "Package price: %s\n", quote.PackagePrice.String())
			fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Savings: %s (%s%%)", quote.SavingsAmount.String(), quote.SavingsPercentage.StringFixed(2))))
			return nil
		},
	}
	savings.Flags().StringArrayVar(&request.RegularPrices, "regular", nil, "regular price of one test, repeatable")
	savings.Flags().StringVar(&request.PackagePrice, "package", "", "package price")
	cmd.AddCommand(savings)
	return cmd
}
