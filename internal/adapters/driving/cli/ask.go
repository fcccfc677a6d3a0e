package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

var (
	askFaculty string
	askJSON    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Assemble the AI context for a query",
	Long: `Runs the full retrieval pipeline for a query and prints the
context string that would be handed to the language model.

Without --faculty, the faculty is detected from the query itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askFaculty, "faculty", "f", "", "faculty tag (fsktm, fkaab, fkee)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]
	requestID := uuid.New().String()

	logger.Section("Ask")
	logger.Debug("Request %s: query=%q faculty=%q", requestID, query, askFaculty)

	faculty := domain.FacultyTag(askFaculty)
	if askFaculty != "" && !faculty.IsValid() {
		return fmt.Errorf("unknown faculty %q: %w", askFaculty, domain.ErrInvalidInput)
	}
	if askFaculty == "" {
		faculty = retrievalService.DetectFaculty(query)
		logger.Info("Request %s: detected faculty %s", requestID, faculty)
	}

	context := retrievalService.ContextForAI(cmd.Context(), faculty, query)

	if askJSON {
		out := map[string]any{
			"request_id": requestID,
			"faculty":    faculty.String(),
			"context":    context,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Faculty: %s\n\n", faculty.Description())
	cmd.Println(context)
	return nil
}
