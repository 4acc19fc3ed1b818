package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splashctl/splashctl/unsplash"
)

var (
	randomQuery       string
	randomCollections []string
	randomCount       int
	randomFeatured    bool
	randomUsername    string
	randomWidth       int
	randomHeight      int
	randomOrientation string
	randomDownload    bool
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Fetch one or more random photos",
	Long: `Fetch random photos from Unsplash, optionally restricted to a search
query or a set of collections. Without --count a single photo is fetched.`,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().StringVarP(&randomQuery, "query", "q", "", "restrict to photos matching a search query")
	randomCmd.Flags().StringSliceVar(&randomCollections, "collections", nil, "restrict to photos in the given collection IDs")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 0, "number of photos to fetch (default: one photo)")
	randomCmd.Flags().BoolVar(&randomFeatured, "featured", false, "restrict to featured photos")
	randomCmd.Flags().StringVarP(&randomUsername, "user", "u", "", "restrict to photos by the given user")
	randomCmd.Flags().IntVar(&randomWidth, "width", 0, "restrict to photos with the given width")
	randomCmd.Flags().IntVar(&randomHeight, "height", 0, "restrict to photos with the given height")
	randomCmd.Flags().StringVarP(&randomOrientation, "orientation", "o", "", "restrict to an orientation (portrait/landscape/squarish)")
	randomCmd.Flags().BoolVar(&randomDownload, "download-url", false, "resolve the tracked download URL for each photo")
}

func runRandom(cmd *cobra.Command, args []string) error {
	if randomQuery != "" && len(randomCollections) > 0 {
		return fmt.Errorf("--query and --collections are mutually exclusive")
	}
	if randomCount < 0 {
		return fmt.Errorf("--count must be at least 1")
	}

	base, err := buildRandomBase(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	photos, err := fetchRandom(ctx, base)
	if err != nil {
		return err
	}

	for _, photo := range photos {
		printPhoto(photo)
	}

	if randomDownload {
		urls, err := client.DownloadURLs(ctx, photos)
		if err != nil {
			return err
		}
		fmt.Println("\nDownload URLs:")
		for _, url := range urls {
			fmt.Printf("  %s\n", url)
		}
	}

	return nil
}

// buildRandomBase applies the base-stage filters from the command flags.
func buildRandomBase(cmd *cobra.Command) (unsplash.Random, error) {
	base := client.RandomPhoto()

	if cmd.Flags().Changed("featured") {
		base = base.Featured(randomFeatured)
	}
	if randomUsername != "" {
		base = base.Username(randomUsername)
	}
	if randomWidth > 0 {
		base = base.Width(randomWidth)
	}
	if randomHeight > 0 {
		base = base.Height(randomHeight)
	}
	if randomOrientation != "" {
		orientation, err := parseOrientation(randomOrientation)
		if err != nil {
			return unsplash.Random{}, err
		}
		base = base.Orientation(orientation)
	}

	return base, nil
}

// fetchRandom takes the narrowing branch selected by the flags. Each branch
// is spelled out because the stages are distinct types: a query restriction
// and a collection restriction cannot be combined.
func fetchRandom(ctx context.Context, base unsplash.Random) ([]unsplash.Photo, error) {
	switch {
	case randomQuery != "" && randomCount > 0:
		return base.Query(randomQuery).Count(randomCount).Get(ctx)
	case randomQuery != "":
		photo, err := base.Query(randomQuery).Get(ctx)
		return singlePhoto(photo, err)
	case len(randomCollections) > 0 && randomCount > 0:
		return base.Collections(randomCollections...).Count(randomCount).Get(ctx)
	case len(randomCollections) > 0:
		photo, err := base.Collections(randomCollections...).Get(ctx)
		return singlePhoto(photo, err)
	case randomCount > 0:
		return base.Count(randomCount).Get(ctx)
	default:
		photo, err := base.Get(ctx)
		return singlePhoto(photo, err)
	}
}

func singlePhoto(photo unsplash.Photo, err error) ([]unsplash.Photo, error) {
	if err != nil {
		return nil, err
	}
	return []unsplash.Photo{photo}, nil
}

func parseOrientation(s string) (unsplash.Orientation, error) {
	switch strings.ToLower(s) {
	case "portrait":
		return unsplash.OrientationPortrait, nil
	case "landscape":
		return unsplash.OrientationLandscape, nil
	case "squarish":
		return unsplash.OrientationSquarish, nil
	default:
		return "", fmt.Errorf("invalid orientation: %s (must be portrait, landscape or squarish)", s)
	}
}

// printPhoto displays one photo in the list style shared by random and list.
func printPhoto(photo unsplash.Photo) {
	fmt.Printf("• %s by %s (@%s)\n", photo.ID, photo.User.Name, photo.User.Username)
	if cfg.Output.ShowDetails {
		if photo.Description != "" {
			fmt.Printf("  %s\n", photo.Description)
		}
		fmt.Printf("  Size: %dx%d  Likes: %d  Created: %s\n",
			photo.Width, photo.Height, photo.Likes, photo.CreatedAt.Format("2006-01-02"))
		fmt.Printf("  %s\n", photo.Links.HTML)
	}
}
