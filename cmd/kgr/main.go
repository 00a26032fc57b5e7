package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kgrefine/internal/config"
	"kgrefine/internal/gkg"
	"kgrefine/internal/logging"
)

var (
	// Global flags
	apiKeyFlag string
	minScore   int
	verbose    bool
	logFile    string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kgr",
	Short: "Replace CSV values with Google Knowledge Graph suggestions",
	Long: `kgr looks values up in the Google Knowledge Graph and replaces them
with their canonical names after interactive confirmation.

Point it at a CSV column: it deduplicates the values, asks the Knowledge
Graph for a better name for each one, and lets you approve every
replacement before anything is written.

An API key is required: https://developers.google.com/knowledge-graph/prereqs
Pass it with --gkg-api-key, the GKG_API_KEY environment variable, or the
api-key field of ~/.config/kgrefine/config.yaml.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		// Flags beat environment variables and the config file.
		if cmd.Flags().Changed("min-score") {
			config.Set("min-score", minScore)
		}
		if cmd.Flags().Changed("verbose") {
			config.Set("verbose", verbose)
		}
		if cmd.Flags().Changed("log-file") {
			config.Set("log-file", logFile)
		}
		logger = logging.New(logging.Options{
			Verbose:  config.GetBool("verbose"),
			FilePath: config.GetString("log-file"),
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// FatalError prints an error message to stderr and exits with status 1.
func FatalError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newReplacer builds the Knowledge Graph client from the resolved
// configuration. The key is resolved once here; nothing downstream reads
// the environment.
func newReplacer() (*gkg.Client, error) {
	apiKey := config.GetAPIKey(apiKeyFlag)
	return gkg.NewClient(apiKey, float64(config.GetInt("min-score")), logger)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&apiKeyFlag, "gkg-api-key", "k", "", "Google Knowledge Graph API key (or set GKG_API_KEY env)")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 1000, "Minimum result score a Knowledge Graph match must exceed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file (rotated)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
