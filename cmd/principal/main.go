package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const programName = "principal"

var globalFlags = struct {
	configFile string
}{}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Mint caller-principal accounts and bearer tokens for the insurance gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&globalFlags.configFile, "config", "c", "", "path to config file (jwt.* settings are read from it)")

	rootCmd.AddCommand(
		keygenCommand(),
		issueCommand(),
	)
	return rootCmd
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}
