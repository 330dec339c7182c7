package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	articlerepo "github.com/heartmarshall/lingoread/internal/adapter/postgres/article"
	"github.com/heartmarshall/lingoread/internal/app/seeder"
	"github.com/heartmarshall/lingoread/internal/service/article"
)

var (
	seedConfigPath string
	seedDataPath   string
	seedForce      bool
	seedDryRun     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample articles into an empty catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedCfg, err := seeder.LoadConfig(seedConfigPath)
		if err != nil {
			return err
		}

		// Flags override config.
		if seedDataPath != "" {
			seedCfg.DataPath = seedDataPath
		}
		if seedForce {
			seedCfg.Force = true
		}
		if seedDryRun {
			seedCfg.DryRun = true
		}

		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		articles := article.NewService(logger, articlerepo.New(pool))
		res, err := seeder.NewPipeline(logger, articles, *seedCfg).Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Seed complete: %d inserted, %d skipped, %d failed (%s)\n",
			res.Inserted, res.Skipped, res.Errors, res.Duration.Round(time.Millisecond))
		if res.Errors > 0 {
			return fmt.Errorf("%d article(s) failed", res.Errors)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "seeder-config", "", "Path to seeder YAML config file")
	seedCmd.Flags().StringVar(&seedDataPath, "data", "", "JSON file of articles (default: built-in samples)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Seed even if the catalog has articles")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate records without writing")
}
