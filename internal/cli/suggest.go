package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/db"
	"github.com/backshelf/reelpath/internal/fields"
	"github.com/backshelf/reelpath/internal/logging"
	"github.com/backshelf/reelpath/internal/models"
	"github.com/backshelf/reelpath/internal/naming"
	"github.com/backshelf/reelpath/internal/presets"
	"github.com/backshelf/reelpath/internal/template"
)

var (
	suggestTemplate string
	suggestJSON     bool
	suggestNoRecord bool
)

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestTemplate, "template", "", "template or preset to use (default from config)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
	suggestCmd.Flags().BoolVar(&suggestNoRecord, "no-history", false, "do not record suggestions to history")
}

type suggestion struct {
	Source string `json:"source"`
	Path   string `json:"path"`
}

var suggestCmd = &cobra.Command{
	Use:   "suggest FILE...",
	Short: "Suggest organized paths for files",
	Long: "Parse each filename, fill the template fields it yields (title, year,\n" +
		"IMDb id, source) and print the rendered destination path. Files are\n" +
		"never touched; every suggestion is recorded to history.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		logger := logging.Component("suggest")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		raw := cfg.DestinationTemplate
		if suggestTemplate != "" {
			raw = suggestTemplate
		}
		tmpl, err := resolveTemplateArg(raw)
		if err != nil {
			return err
		}
		allowed := fields.AllowedSet()
		if err := template.Validate(tmpl, allowed); err != nil {
			return err
		}

		lang, region := naming.NormalizeLanguage(cfg.Language)
		if cfg.Region != "" {
			region = cfg.Region
		}
		if region == "" {
			region = naming.DefaultRegion(lang)
		}

		var repo *db.HistoryRepository
		if !suggestNoRecord {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()
			repo = db.NewHistoryRepository(database)
		}

		presetName := ""
		if raw != tmpl {
			presetName = presets.PresetName(raw)
		}

		var out []suggestion
		for _, file := range args {
			base := filepath.Base(file)
			parsed := naming.ParseFilename(base)

			values := fields.BuildValues(fields.Input{
				Title:         naming.Sanitize(parsed.Title),
				Year:          parsed.Year,
				IMDBID:        parsed.IMDBID,
				Source:        naming.ParseSource(base),
				Lang:          lang,
				Region:        region,
				LocalFilename: base,
			})

			rendered, err := template.Render(tmpl, values, allowed)
			if err != nil {
				return fmt.Errorf("%s: %w", base, err)
			}
			rendered += filepath.Ext(base)
			out = append(out, suggestion{Source: file, Path: rendered})

			if repo != nil {
				record := &models.HistoryRecord{
					SourceFile:   file,
					RenderedPath: rendered,
					Template:     tmpl,
					Preset:       presetName,
				}
				if err := repo.Create(ctx, record); err != nil {
					logger.Warn().Err(err).Str("file", file).Msg("failed to record suggestion")
				}
			}
		}

		if suggestJSON {
			return json.NewEncoder(os.Stdout).Encode(out)
		}
		for _, s := range out {
			fmt.Printf("%s -> %s\n", s.Source, s.Path)
		}
		return nil
	},
}
