package imgur

import (
	"context"
	"io"
)

// API defines the interface for Imgur operations
type API interface {
	// GetAccount retrieves standard account information for a username
	GetAccount(ctx context.Context, username string) (*Account, error)

	// GetAlbum retrieves information about an album
	GetAlbum(ctx context.Context, id string) (*Album, error)

	// GetImage retrieves information about an image
	GetImage(ctx context.Context, id string) (*Image, error)

	// GetImages retrieves multiple images concurrently
	GetImages(ctx context.Context, ids ...string) ([]*Image, error)

	// UploadImage uploads an image from base64 data or a URL
	UploadImage(ctx context.Context, req UploadRequest) (*Image, error)

	// UploadImageReader uploads an image from a raw byte stream
	UploadImageReader(ctx context.Context, r io.Reader, req UploadRequest) (*Image, error)

	// UpdateImage updates the title or description of an image
	UpdateImage(ctx context.Context, id, title, description string) error

	// DeleteImage deletes an image by id or deletehash
	DeleteImage(ctx context.Context, id string) error
}

// Authorizer describes the OAuth pin flow used to obtain a bearer token.
type Authorizer interface {
	// AuthorizationURL returns the URL the user visits to authorize the app
	AuthorizationURL() string

	// Authorize exchanges a pin code for a bearer token
	Authorize(ctx context.Context, pin string) error

	// AccessToken returns the currently held bearer token, if any
	AccessToken() string
}
