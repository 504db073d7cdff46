package cli

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/template"
)

func init() {
	rootCmd.AddCommand(filtersCmd)
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List template filters",
	Long:  "List the filters and condition rules templates may apply to field values.",
	RunE: func(cmd *cobra.Command, args []string) error {
		usages := make([]string, 0, len(template.FilterDescriptions))
		for usage := range template.FilterDescriptions {
			usages = append(usages, usage)
		}
		sort.Strings(usages)

		rows := make([][]string, 0, len(usages))
		for _, usage := range usages {
			rows = append(rows, []string{usage, template.FilterDescriptions[usage]})
		}
		return writeTable(os.Stdout, []string{"FILTER", "DESCRIPTION"}, rows)
	},
}
