package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/history"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved generation history",
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCommand.PersistentFlags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	historyCommand.PersistentFlags().IntVar(&historyLimit, "limit", 50, "Maximum number of records to show")

	historyCommand.AddCommand(historyListCommand)
	historyCommand.AddCommand(historySearchCommand)
	historyCommand.AddCommand(historyStatsCommand)
	rootCmd.AddCommand(historyCommand)
}

func openHistoryStore(ctx context.Context) (*history.Store, error) {
	dsn := historyDatabaseURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, fmt.Errorf("--db-url flag or DATABASE_URL environment variable is required")
	}

	store, err := history.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

var historyListCommand = &cobra.Command{
	Use:   "list",
	Short: "List recent generation records",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		store, err := openHistoryStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(ctx, historyLimit, 0)
		if err != nil {
			return err
		}
		printHistoryRecords(records)
		return nil
	},
}

var historySearchCommand = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search history by job title or company",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := openHistoryStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Search(ctx, args[0], historyLimit)
		if err != nil {
			return err
		}
		printHistoryRecords(records)
		return nil
	},
}

var historyStatsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for the stored history",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		store, err := openHistoryStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Total generations: %d\n", stats.TotalGenerations)
		fmt.Printf("Average score:     %.1f\n", stats.AverageScore)
		fmt.Printf("Last 7 days:       %d\n", stats.RecentWeek)
		for genType, count := range stats.ByType {
			fmt.Printf("  %-12s %d\n", genType+":", count)
		}
		return nil
	},
}

func printHistoryRecords(records []history.Record) {
	if len(records) == 0 {
		fmt.Println("No history records.")
		return
	}
	for _, record := range records {
		fmt.Printf("%s  %-12s %5.1f  %s @ %s\n",
			record.CreatedAt.Format("2006-01-02 15:04"),
			record.GenerationType,
			record.MatchScore,
			record.JobTitle,
			record.CompanyName,
		)
	}
}
