package imgur

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAlbum retrieves information about the album with the given id.
func (c *Client) GetAlbum(ctx context.Context, id string) (*Album, error) {
	if id == "" {
		return nil, fmt.Errorf("album id: %w", ErrEmptyID)
	}

	album, err := call[Album](ctx, c, http.MethodGet, "album/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", id, err)
	}

	c.logger.Debug().Str("album_id", id).Int("images", album.ImagesCount).
		Msg("Retrieved album from Imgur")
	return &album, nil
}
