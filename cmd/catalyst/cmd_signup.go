package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

func newSignupCmd() *cobra.Command {
	var email, tier string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and get an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := catalyst.Signup(cmd.Context(), email, catalyst.Tier(tier), clientOptions(cmd)...)
			if err != nil {
				return err
			}

			fmt.Printf("API key: %s\n", resp.APIKey)
			fmt.Printf("Tier:    %s (%d jobs/day)\n", resp.Tier, resp.Limits.JobsPerDay)
			if resp.CheckoutURL != "" {
				fmt.Printf("Complete checkout to activate: %s\n", resp.CheckoutURL)
			}
			fmt.Println("\nStore the key in CATALYST_API_KEY or a .env file.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&tier, "tier", string(catalyst.TierFree), "pricing tier (free, researcher, startup, enterprise)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
