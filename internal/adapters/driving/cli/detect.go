package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var detectJSON bool

var detectCmd = &cobra.Command{
	Use:   "detect [query]",
	Short: "Classify which faculty a query concerns",
	Long: `Classifies a query as one faculty, unclear (ambiguous or needing
faculty context), or general (faculty-agnostic). Also reports whether
the query passes the coarse campus-relevance gate.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	query := args[0]

	tag := retrievalService.DetectFaculty(query)
	relevant := retrievalService.IsFacultyQuery(query)

	if detectJSON {
		out := map[string]any{
			"faculty":      tag.String(),
			"campus_query": relevant,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Faculty: %s\n", tag.Description())
	cmd.Printf("Campus query: %t\n", relevant)
	return nil
}
