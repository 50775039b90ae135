package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/decktrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decktrans [files...]",
		Short: "Slide deck translator with translation memory",
		Long: `decktrans translates slide decks while keeping their formatting.

Text is split into runs of equal formatting, stripped of numbering and
punctuation, looked up in a translation memory and, when missing, sent
to a translation backend. Every translation is stored in a dictionary
that is reused by later runs.

Examples:
  decktrans talk.yaml                         # Translate one deck to German
  decktrans --to et decks/                    # Translate every deck in a directory
  decktrans --source "a.yaml;b.yaml"          # Translate a ;-separated list
  decktrans --dictionary talk.csv talk.yaml   # Keep a job dictionary next to the global one
  decktrans --backend none talk.yaml          # Use the dictionaries only`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.decktrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for translated decks and dictionaries")
	cmd.Flags().StringVar(&flags.From, "from", flags.From, "Source language (BCP 47 tag)")
	cmd.Flags().StringVar(&flags.To, "to", flags.To, "Target language (BCP 47 tag)")
	cmd.Flags().StringVar(&flags.Backend, "backend", flags.Backend, "Translation backend: none, openai or gemini")
	cmd.Flags().StringVar(&flags.Source, "source", "", "Files or directories separated by ';'")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the dictionaries before they are rewritten")

	// Dictionary flags
	cmd.Flags().StringVar(&flags.GlobalDictionary, "dictionary-global", flags.GlobalDictionary, "Global dictionary (.csv, or .db/.sqlite for SQLite)")
	cmd.Flags().StringVar(&flags.Dictionary, "dictionary", "", "Job dictionary layered over the global one")
	cmd.Flags().BoolVar(&flags.RemoveUnused, "remove-unused", false, "Remove global entries the job dictionary does not use")

	// Document flags
	cmd.Flags().StringVar(&flags.RemoveColor, "remove-color", "", "Delete runs with this fill colour (hex) instead of translating them")

	// Backend flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model")
	cmd.Flags().BoolVar(&flags.Breaker, "breaker", false, "Stop calling the backend after repeated failures")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("translate.from", cmd.Flags().Lookup("from"))
	viper.BindPFlag("translate.to", cmd.Flags().Lookup("to"))
	viper.BindPFlag("translate.backend", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("translate.remove_color", cmd.Flags().Lookup("remove-color"))
	viper.BindPFlag("translate.breaker", cmd.Flags().Lookup("breaker"))
	viper.BindPFlag("dictionary.global", cmd.Flags().Lookup("dictionary-global"))
	viper.BindPFlag("dictionary.job", cmd.Flags().Lookup("dictionary"))
	viper.BindPFlag("dictionary.remove_unused", cmd.Flags().Lookup("remove-unused"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
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

		// Search config in home directory with name ".decktrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".decktrans")
	}

	// Environment variables
	viper.SetEnvPrefix("DECKTRANS")
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
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	return viper.GetString("gemini.api_key")
}
