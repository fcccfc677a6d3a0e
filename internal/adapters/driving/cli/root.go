// Package cli implements the cobra command-line interface for KampusKB.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/talenta-labs/kampuskb/internal/adapters/driven/config/file"
	"github.com/talenta-labs/kampuskb/internal/adapters/driven/corpus/embedded"
	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driving"
	"github.com/talenta-labs/kampuskb/internal/core/services"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.2.0"

var (
	verbose bool

	// retrievalService is shared by all commands. Tests replace it.
	retrievalService driving.RetrievalService
)

var rootCmd = &cobra.Command{
	Use:   "kampuskb",
	Short: "Faculty knowledge retrieval for the campus AI assistant",
	Long: `KampusKB selects, ranks and assembles faculty knowledge
(identity, programmes, staff directory, contacts) into the compact
context string handed to the chat assistant's language model.

Queries may be Malay, English or a mix of both; misspelled names
are matched by edit distance.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		ensureServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose pipeline logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the retrieval service on first use. Config load
// failures fall back to default weights; retrieval must always work.
func ensureServices() {
	if retrievalService != nil {
		return
	}

	weights := domain.DefaultScoringWeights()
	fallback := domain.FacultyTag("")

	if store, err := file.NewConfigStore(""); err == nil {
		weights = store.Weights()
		fallback = domain.FacultyTag(store.DefaultFaculty())
	} else {
		logger.Warn("Config store unavailable: %v (using defaults)", err)
	}

	opts := []services.Option{services.WithWeights(weights)}
	if fallback.IsConcrete() {
		opts = append(opts, services.WithFallbackFaculty(fallback))
	}

	retrievalService = services.NewRetrievalService(embedded.NewSource(), opts...)
}
