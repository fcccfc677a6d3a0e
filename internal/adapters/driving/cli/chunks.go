package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

var (
	chunksFaculty string
	chunksLimit   int
	chunksJSON    bool
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [query]",
	Short: "Show the top-ranked document chunks for a query",
	Args:  cobra.ExactArgs(1),
	RunE:  runChunks,
}

func init() {
	chunksCmd.Flags().StringVarP(&chunksFaculty, "faculty", "f", "", "faculty tag (fsktm, fkaab, fkee)")
	chunksCmd.Flags().IntVarP(&chunksLimit, "limit", "n", domain.DefaultMaxChunks, "maximum number of chunks")
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output chunks as JSON")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	query := args[0]

	faculty := domain.FacultyTag(chunksFaculty)
	if chunksFaculty != "" && !faculty.IsValid() {
		return fmt.Errorf("unknown faculty %q: %w", chunksFaculty, domain.ErrInvalidInput)
	}

	chunks := retrievalService.RelevantChunks(cmd.Context(), faculty, query, chunksLimit)

	if chunksJSON {
		type chunkOut struct {
			ID       string   `json:"id"`
			Category string   `json:"category"`
			Keywords []string `json:"keywords"`
			Content  string   `json:"content"`
		}
		out := make([]chunkOut, len(chunks))
		for i, c := range chunks {
			out[i] = chunkOut{
				ID:       c.ID,
				Category: c.Category.String(),
				Keywords: c.Keywords,
				Content:  c.Content,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal chunks: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(chunks) == 0 {
		cmd.Println("No matching chunks.")
		return nil
	}

	for i, c := range chunks {
		cmd.Printf("  [%d] %s (%s)\n", i+1, c.ID, c.Category)
		cmd.Printf("      %s\n", firstLine(c.Content))
		cmd.Println()
	}
	return nil
}

// firstLine returns the first line of a chunk's content for compact
// table output.
func firstLine(content string) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			return content[:i]
		}
	}
	return content
}
