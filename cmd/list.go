package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splashctl/splashctl/filter"
	"github.com/splashctl/splashctl/unsplash"
)

var (
	listPage    int
	listPerPage int
	listOrder   string
	filterExpr  string
	preset      string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos matching the filter criteria",
	Long: `List a page of the Unsplash photo feed, optionally narrowed down
client-side with a filter expression, e.g.:

  splashctl list --filter 'Likes > 100 && isLandscape()'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listPage, "page", 0, "page to fetch (pages start at 1)")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "photos per page")
	listCmd.Flags().StringVar(&listOrder, "order", "", "ordering (latest/oldest/popular)")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runList(cmd *cobra.Command, args []string) error {
	if listPage < 0 || listPerPage < 0 {
		return fmt.Errorf("--page and --per-page must be at least 1")
	}

	builder := client.ListPhotos()
	if listPage > 0 {
		builder = builder.Page(listPage)
	}
	if listPerPage > 0 {
		builder = builder.PerPage(listPerPage)
	}
	if listOrder != "" {
		order, err := parseOrder(listOrder)
		if err != nil {
			return err
		}
		builder = builder.OrderBy(order)
	}

	ctx := context.Background()
	photos, err := builder.Get(ctx)
	if err != nil {
		return err
	}

	// Apply the client-side filter, if any
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		logger.Info().Str("filter", expr).Msg("Filtering photos")

		photoFilter, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		photos = filter.Apply(photoFilter, photos)
	}

	// Display results
	if len(photos) == 0 {
		fmt.Println("No photos found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d photos:\n", len(photos))
	fmt.Println(strings.Repeat("-", 80))

	for _, photo := range photos {
		printPhoto(photo)
	}

	return nil
}

func parseOrder(s string) (unsplash.Order, error) {
	switch strings.ToLower(s) {
	case "latest":
		return unsplash.OrderLatest, nil
	case "oldest":
		return unsplash.OrderOldest, nil
	case "popular":
		return unsplash.OrderPopular, nil
	default:
		return "", fmt.Errorf("invalid order: %s (must be latest, oldest or popular)", s)
	}
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > none
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetExpr, ok := cfg.Filter[preset]; ok {
			return presetExpr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}
