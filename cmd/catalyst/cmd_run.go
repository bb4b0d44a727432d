package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

func newRunCmd() *cobra.Command {
	var (
		file         string
		timesteps    int
		pollInterval time.Duration
		maxWait      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create a network and run a simulation to completion",
		Long: `run creates the network defined in the YAML file, submits a simulation
job, and polls until the job completes or fails. The result summary is
printed as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nf, err := loadNetworkFile(file)
			if err != nil {
				return err
			}

			client, err := apiClient(cmd)
			if err != nil {
				return err
			}

			net, err := client.CreateNetwork(cmd.Context(), &catalyst.NetworkRequest{
				Populations: nf.Populations,
				Connections: nf.Connections,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "network %s created (%d neurons), running %d timesteps...\n",
				net.NetworkID, net.TotalNeurons, timesteps)

			job, err := client.Simulate(cmd.Context(), &catalyst.JobRequest{
				NetworkID: net.NetworkID,
				Timesteps: timesteps,
				Stimuli:   nf.Stimuli,
				Rewards:   nf.Rewards,
				Learning:  nf.Learning,
			},
				catalyst.WithPollInterval(pollInterval),
				catalyst.WithMaxWait(maxWait),
			)
			if err != nil {
				return err
			}

			return printJSON(job)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "network definition YAML")
	cmd.Flags().IntVar(&timesteps, "timesteps", 1000, "simulation timesteps")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", defaultRunPollInterval, "pause between status checks")
	cmd.Flags().DurationVar(&maxWait, "max-wait", defaultRunMaxWait, "maximum time to wait for completion")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
