// Package cmd contains the command line of the eventdesk service.
package cmd

import (
	"eventdesk/common"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:   common.ServiceName,
	Short: "Event planning dashboard service",
	Long: `eventdesk serves the planning dashboard of an organization's events:
tasks, budget, speakers, sponsors, university alliances, marketing and the
derived progress views, guarded by organization and event roles.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, seedCmd)
}
