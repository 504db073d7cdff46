package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/fields"
)

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List template fields",
	Long:  "List the placeholder fields destination templates may reference.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, f := range fields.Catalog() {
			rows = append(rows, []string{f.Name, f.Description})
		}
		return writeTable(os.Stdout, []string{"FIELD", "DESCRIPTION"}, rows)
	},
}
