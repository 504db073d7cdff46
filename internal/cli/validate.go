package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/fields"
	"github.com/backshelf/reelpath/internal/template"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate TEMPLATE",
	Short: "Validate a destination template",
	Long: "Check a destination template (or preset name, or preset:NAME) for syntax\n" +
		"errors, unknown fields and unknown filters without rendering it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := resolveTemplateArg(args[0])
		if err != nil {
			return err
		}
		if err := template.Validate(tmpl, fields.AllowedSet()); err != nil {
			return err
		}
		fmt.Println("template is valid")
		return nil
	},
}
