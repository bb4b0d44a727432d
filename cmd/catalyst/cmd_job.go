package main

import (
	"github.com/spf13/cobra"
)

func newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Inspect submitted jobs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <job-id>",
			Short: "Print job status and result summary",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := apiClient(cmd)
				if err != nil {
					return err
				}

				job, err := client.GetJob(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(job)
			},
		},
		&cobra.Command{
			Use:   "spikes <job-id>",
			Short: "Print full spike train data for a completed job",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := apiClient(cmd)
				if err != nil {
					return err
				}

				spikes, err := client.GetSpikes(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(spikes)
			},
		},
	)

	return cmd
}
