package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "koshaenrich [input.yaml]",
		Short: "Sanskrit Kosha Metadata Enricher",
		Long: `koshaenrich annotates Sanskrit kosha slokas with lexical metadata.

It reads a YAML file whose keys are slokas, asks a hosted text-generation
model for headwords, synonym groups (pratipadika stems) and genders, and
writes an enriched YAML file with a verify flag for proofreading.

Examples:
  koshaenrich slokas.yaml -o slokas_enriched.yaml --project-id my-project
  koshaenrich slokas.yaml -o out.yaml --provider openai
  koshaenrich slokas.yaml -o out.yaml --project-id my-project --db kosha.db
  koshaenrich --list-models`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.koshaenrich.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output enriched YAML file path (required)")
	cmd.Flags().StringVar(&flags.ProjectID, "project-id", "", "Google Cloud project ID (required for the vertex provider)")
	cmd.Flags().StringVar(&flags.Region, "region", flags.Region, "Vertex AI region")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model provider: vertex or openai")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name (default depends on provider)")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Maximum generated tokens per sloka")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "Also export enriched entries to a SQLite database at this path")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("enrich.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("enrich.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("enrich.max_tokens", cmd.Flags().Lookup("max-tokens"))
	viper.BindPFlag("enrich.project_id", cmd.Flags().Lookup("project-id"))
	viper.BindPFlag("enrich.region", cmd.Flags().Lookup("region"))
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.db", cmd.Flags().Lookup("db"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".koshaenrich" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".koshaenrich")
	}

	// Environment variables
	viper.SetEnvPrefix("KOSHAENRICH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("enrich.openai_key")
}
