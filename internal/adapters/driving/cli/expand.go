package cli

import (
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [query]",
	Short: "Show a query after synonym expansion",
	Long: `Prints the query after Malay/English synonym expansion, exactly
as the relevance scorer will see it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(retrievalService.ExpandQuery(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
