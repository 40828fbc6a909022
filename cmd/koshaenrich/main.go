package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/cli"
	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/models"
	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if len(args) == 0 {
		return fmt.Errorf("input YAML file is required (see --help)")
	}
	if flags.OutputPath == "" {
		return fmt.Errorf("output path is required (use --output)")
	}
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("input file not found: %s", args[0])
	}

	// Create processor and run the enrichment pipeline
	proc := processor.NewProcessor(flags)
	return proc.Run(args[0])
}
