package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingoread/internal/app"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/ingest"
)

var (
	ingestLevel    string
	ingestLanguage string
	ingestCategory string
	ingestTags     []string
	ingestLimit    int
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <feed-url>",
	Short: "Adapt the latest items of an RSS/Atom feed into articles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := domain.ParseLevel(ingestLevel)
		if err != nil {
			return err
		}

		input := ingest.FeedInput{
			FeedURL:        args[0],
			TargetLevel:    level,
			NativeLanguage: domain.Language(strings.ToLower(ingestLanguage)),
			Tags:           ingestTags,
			Limit:          ingestLimit,
		}
		if ingestCategory != "" {
			c := domain.Category(strings.ToLower(ingestCategory))
			input.Category = &c
		}

		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		svcs, err := app.NewServices(cmd.Context(), cfg, pool, logger)
		if err != nil {
			return err
		}

		report, err := svcs.Ingest.FromFeed(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Println("Ingest complete:")
		fmt.Printf("  Items fetched: %d\n", report.Fetched)
		fmt.Printf("  Articles adapted: %d\n", report.Adapted)
		fmt.Printf("  Failed: %d\n", report.Failed)
		for _, id := range report.ArticleIDs {
			fmt.Printf("  + %s\n", id)
		}
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestLevel, "level", "B1", "Target CEFR level")
	ingestCmd.Flags().StringVar(&ingestLanguage, "lang", "spanish", "Native language for cultural notes")
	ingestCmd.Flags().StringVar(&ingestCategory, "category", "", "Article category (default: adapter default)")
	ingestCmd.Flags().StringSliceVar(&ingestTags, "tag", nil, "Tag to attach (repeatable)")
	ingestCmd.Flags().IntVar(&ingestLimit, "limit", ingest.DefaultLimit, "Maximum items to adapt")
}
