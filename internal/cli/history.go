package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/backshelf/reelpath/internal/db"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum records to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded rename plans",
	Long:  "Show the most recent rendered rename plans, newest first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewHistoryRepository(database)
		records, err := repo.List(context.Background(), historyLimit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("history is empty")
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			preset := r.Preset
			if preset == "" {
				preset = "-"
			}
			rows = append(rows, []string{
				r.CreatedAt.Local().Format(time.DateTime),
				preset,
				r.SourceFile,
				r.RenderedPath,
			})
		}
		return writeTable(os.Stdout, []string{"WHEN", "PRESET", "SOURCE", "DESTINATION"}, rows)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsInteractive() {
			ok, err := confirm("Delete all history records?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("aborted")
				return nil
			}
		}

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewHistoryRepository(database)
		n, err := repo.Purge(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d records\n", n)
		return nil
	},
}

func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
