package cmd

import (
	"eventdesk/seed"
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect seed files",
}

var seedValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a seed file can be loaded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := seed.Load(args[0])
		if err != nil {
			return err
		}
		if _, _, err := s.Build(); err != nil {
			return fmt.Errorf("build seed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d users, %d projects\n", args[0], len(s.Users), len(s.Projects))
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedValidateCmd)
}
