package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

// networkFile is the YAML network definition consumed by 'network create'
// and 'run':
//
//	populations:
//	  - label: input
//	    size: 100
//	    params:
//	      threshold: 1000
//	  - label: output
//	    size: 50
//	connections:
//	  - source: input
//	    target: output
//	    topology: all_to_all
//	    weight: 500
//	stimuli:
//	  - population: input
//	    current: 5000
type networkFile struct {
	Populations []catalyst.Population    `yaml:"populations"`
	Connections []catalyst.Connection    `yaml:"connections"`
	Stimuli     []catalyst.Stimulus      `yaml:"stimuli"`
	Rewards     []catalyst.Reward        `yaml:"rewards"`
	Learning    *catalyst.LearningConfig `yaml:"learning"`
}

func loadNetworkFile(path string) (*networkFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nf networkFile
	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(nf.Populations) == 0 {
		return nil, fmt.Errorf("%s defines no populations", path)
	}
	return &nf, nil
}

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage network definitions",
	}
	cmd.AddCommand(newNetworkCreateCmd())
	return cmd
}

func newNetworkCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a network from a YAML definition",
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

			fmt.Printf("Network %s created (%d neurons)\n", net.NetworkID, net.TotalNeurons)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "network definition YAML")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
