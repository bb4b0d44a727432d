// Command catalyst is a command-line interface to the Catalyst Cloud
// neuromorphic compute API.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

func main() {
	// Pick up CATALYST_API_KEY and friends from a local .env if present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "catalyst",
		Short: "Run spiking neural network simulations in the cloud",
		Long: `catalyst submits spiking neural network simulations to Catalyst Cloud.

Define a network in a YAML file, run it for a number of timesteps, and
read back firing rates and spike trains. An API key is required for all
commands except signup; pass it with --api-key or set CATALYST_API_KEY.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("api-key", "", "API key (defaults to CATALYST_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (defaults to CATALYST_BASE_URL, then production)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-request timeout (default 30s)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignupCmd(),
		newNetworkCmd(),
		newRunCmd(),
		newJobCmd(),
		newUsageCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("catalyst version %s\n", catalyst.Version)
		},
	}
}

// clientOptions collects the SDK options shared by every command from the
// persistent flags and environment.
func clientOptions(cmd *cobra.Command) []catalyst.Option {
	var opts []catalyst.Option

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = os.Getenv("CATALYST_BASE_URL")
	}
	if baseURL != "" {
		opts = append(opts, catalyst.WithBaseURL(baseURL))
	}

	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		opts = append(opts, catalyst.WithTimeout(timeout))
	}

	return opts
}

// apiClient builds an authenticated SDK client from flags and environment.
func apiClient(cmd *cobra.Command) (*catalyst.Client, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("CATALYST_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: pass --api-key, set CATALYST_API_KEY, or run 'catalyst signup'")
	}

	return catalyst.NewClient(apiKey, clientOptions(cmd)...), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// must be kept in sync with the SDK's polling defaults so --help matches
// actual behavior.
const (
	defaultRunPollInterval = 500 * time.Millisecond
	defaultRunMaxWait      = 5 * time.Minute
)
