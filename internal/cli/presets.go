package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/presets"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	Long:  "List builtin and user-defined template presets, user presets first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		catalog, err := presets.LoadPresets(cwd)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(catalog))
		for _, p := range catalog {
			rows = append(rows, []string{p.Name, p.Description, p.Template})
		}
		return writeTable(os.Stdout, []string{"NAME", "DESCRIPTION", "TEMPLATE"}, rows)
	},
}
