package main

import (
	"context"
	"fmt"
	"time"

	"locallibrary/internal/config"
	"locallibrary/pkg/container"
	"locallibrary/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "populatedb",
	Short: "Seed the catalog with sample authors, genres, books and copies",
	Long: `Connects to the configured store (STORE_DRIVER, DB_*) and inserts the
sample catalog through the same services the web application uses, so every
record passes the regular validation rules.`,
	SilenceUsage: true,
	RunE:         runPopulate,
}

var (
	populateDriver  string
	populateTimeout time.Duration
	populateDryRun  bool
)

func init() {
	rootCmd.Flags().StringVarP(&populateDriver, "driver", "d", "", "Store driver override (postgres or memory)")
	rootCmd.Flags().DurationVarP(&populateTimeout, "timeout", "t", time.Minute, "Timeout for the whole run")
	rootCmd.Flags().BoolVar(&populateDryRun, "dry-run", false, "Validate the sample data without writing it")
}

func runPopulate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if populateDriver != "" {
		cfg.Store.Driver = populateDriver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	if populateDryRun {
		return validateSample()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), populateTimeout)
	defer cancel()

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	counts, err := seed(ctx, c)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %d authors, %d genres, %d books, %d copies\n",
		counts.Authors, counts.Genres, counts.Books, counts.BookInstances)
	return nil
}
