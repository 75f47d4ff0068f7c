package imgur

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrency limits how many image lookups run in parallel during a
// batch fetch.
const MaxConcurrency = 5

// GetImages fetches multiple images concurrently. Results are returned in the
// same order as ids. The first failure cancels the remaining lookups.
func (c *Client) GetImages(ctx context.Context, ids ...string) ([]*Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	images := make([]*Image, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			image, err := c.GetImage(ctx, id)
			if err != nil {
				return fmt.Errorf("image %s: %w", id, err)
			}
			images[i] = image
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(images)).Msg("Retrieved images from Imgur")
	return images, nil
}
