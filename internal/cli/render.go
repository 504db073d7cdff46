package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/fields"
	"github.com/backshelf/reelpath/internal/presets"
	"github.com/backshelf/reelpath/internal/template"
)

var (
	renderSetValues []string
	renderJSON      bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringArrayVar(&renderSetValues, "set", nil, "field value as FIELD=VALUE (repeatable)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "output as JSON")
}

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE",
	Short: "Render a destination template",
	Long: "Render a destination template (or preset name, or preset:NAME) with the\n" +
		"field values supplied via --set. Unset fields render as empty strings.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseSetFlags(renderSetValues)
		if err != nil {
			return err
		}

		tmpl, err := resolveTemplateArg(args[0])
		if err != nil {
			return err
		}

		out, err := template.Render(tmpl, values, fields.AllowedSet())
		if err != nil {
			return err
		}

		if renderJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]string{
				"template": tmpl,
				"output":   out,
			})
		}
		fmt.Println(out)
		return nil
	},
}

func parseSetFlags(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected FIELD=VALUE", pair)
		}
		name = template.NormalizeFieldName(name)
		if !fields.AllowedSet().Has(name) {
			return nil, fmt.Errorf("unknown field %q in --set", name)
		}
		values[name] = value
	}
	return values, nil
}

func resolveTemplateArg(raw string) (string, error) {
	cwd, _ := os.Getwd()
	catalog, err := presets.LoadPresets(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to load presets: %w", err)
	}
	return presets.ResolveTemplate(raw, catalog)
}
