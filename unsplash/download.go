package unsplash

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentResolves bounds the fan-out of DownloadURLs.
const maxConcurrentResolves = 10

// downloadURL is the body of a photo's download endpoint.
type downloadURL struct {
	URL string `json:"url"`
}

// DownloadURL resolves the tracked download URL of a photo.
//
// Unsplash requires API consumers to download photos through the URL
// returned by the photo's download endpoint, reachable via
// photo.Links.DownloadLocation, rather than the raw photo URLs.
func (c *Client) DownloadURL(ctx context.Context, photo Photo) (string, error) {
	if photo.Links.DownloadLocation == "" {
		return "", fmt.Errorf("photo %s has no download location", photo.ID)
	}
	out, err := GetJSON[downloadURL](ctx, &c.public, nil, photo.Links.DownloadLocation)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

// DownloadURLs resolves the tracked download URLs of several photos
// concurrently, preserving order. The first failure cancels the remaining
// resolutions.
func (c *Client) DownloadURLs(ctx context.Context, photos []Photo) ([]string, error) {
	if len(photos) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)

	urls := make([]string, len(photos))
	for i, photo := range photos {
		i, photo := i, photo
		g.Go(func() error {
			url, err := c.DownloadURL(ctx, photo)
			if err != nil {
				return fmt.Errorf("failed to resolve download URL for %s: %w", photo.ID, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
