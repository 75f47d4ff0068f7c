package imgur

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GetImage retrieves information about the image with the given id.
func (c *Client) GetImage(ctx context.Context, id string) (*Image, error) {
	if id == "" {
		return nil, fmt.Errorf("image id: %w", ErrEmptyID)
	}

	image, err := call[Image](ctx, c, http.MethodGet, "image/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get image %s: %w", id, err)
	}

	c.logger.Debug().Str("image_id", id).Str("link", image.Link).
		Msg("Retrieved image from Imgur")
	return &image, nil
}

// UploadImage uploads a new image from base64 data or a URL with the optional
// parameters set on req.
func (c *Client) UploadImage(ctx context.Context, req UploadRequest) (*Image, error) {
	if req.Image == "" {
		return nil, ErrMissingImage
	}

	form := url.Values{}
	form.Set("image", req.Image)
	if req.Album != "" {
		form.Set("album", req.Album)
	}
	if req.Type != "" {
		form.Set("type", req.Type)
	}
	if req.Name != "" {
		form.Set("name", req.Name)
	}
	if req.Title != "" {
		form.Set("title", req.Title)
	}
	if req.Description != "" {
		form.Set("description", req.Description)
	}

	image, err := call[Image](ctx, c, http.MethodPost, "image", form)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	c.logger.Info().Str("image_id", image.ID).Str("link", image.Link).
		Msg("Uploaded image to Imgur")
	return &image, nil
}

// UploadImageReader uploads a new image from a raw byte stream. The stream is
// decoded, normalized to PNG (downscaled first when the client has a max
// upload dimension) and base64-encoded before upload. Any Image or Type set
// on req is replaced by the encoded payload.
func (c *Client) UploadImageReader(ctx context.Context, r io.Reader, req UploadRequest) (*Image, error) {
	data, err := normalizeImage(r, c.maxUploadDim)
	if err != nil {
		return nil, err
	}

	req.Image = base64.StdEncoding.EncodeToString(data)
	req.Type = "base64"
	return c.UploadImage(ctx, req)
}

// DeleteImage deletes an image. For an anonymous image, id must be the
// image's deletehash; for an image belonging to the authorized account the
// image id is sufficient.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("image id: %w", ErrEmptyID)
	}

	if _, err := call[bool](ctx, c, http.MethodDelete, "image/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}

	c.logger.Info().Str("image_id", id).Msg("Deleted image from Imgur")
	return nil
}

// UpdateImage updates the title or description of an image. For an anonymous
// image, id must be the image's deletehash.
func (c *Client) UpdateImage(ctx context.Context, id, title, description string) error {
	if id == "" {
		return fmt.Errorf("image id: %w", ErrEmptyID)
	}

	form := url.Values{}
	if title != "" {
		form.Set("title", title)
	}
	if description != "" {
		form.Set("description", description)
	}

	if _, err := call[bool](ctx, c, http.MethodPost, "image/"+url.PathEscape(id), form); err != nil {
		return fmt.Errorf("failed to update image %s: %w", id, err)
	}

	c.logger.Info().Str("image_id", id).Msg("Updated image on Imgur")
	return nil
}
