// Package main provides the cervicare CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

type globalOpts struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalOpts

	rootCmd := &cobra.Command{
		Use:   "cervicare",
		Short: "Cervical cancer risk questionnaire scoring",
		Long: `Cervicare scores a completed cervical health questionnaire into a
low, moderate or high risk tier and lists the answers that raised it.
It is an educational estimate, not a diagnosis.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), g.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config file (default: search for .cervicare/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newAssessCmd(&g),
		newQuestionsCmd(),
		newTemplateCmd(),
		newTipsCmd(&g),
	)

	return rootCmd
}
