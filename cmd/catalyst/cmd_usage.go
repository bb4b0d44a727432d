package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show usage for the current billing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient(cmd)
			if err != nil {
				return err
			}

			usage, err := client.Usage(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Jobs today:            %d\n", usage.JobsToday)
			fmt.Printf("Compute seconds today: %.1f\n", usage.ComputeSecondsToday)
			fmt.Printf("Estimated cost:        $%.2f\n", usage.EstimatedCost)
			return nil
		},
	}
}
