package imgur

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// Imgur OAuth 2.0 endpoints.
const (
	defaultAuthURL  = "https://api.imgur.com/oauth2/authorize"
	defaultTokenURL = "https://api.imgur.com/oauth2/token"
)

// oauthConfig builds the oauth2 configuration for the pin flow.
func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.authURL,
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL returns the URL the user must visit to authorize the
// application. Imgur displays a pin code there which is then passed to
// Authorize.
func (c *Client) AuthorizationURL() string {
	return c.oauthConfig().AuthCodeURL("", oauth2.SetAuthURLParam("response_type", "pin"))
}

// Authorize exchanges the pin code obtained by the user for a bearer token
// and installs it on the client. All subsequent requests authenticate with
// "Bearer <token>" instead of "Client-ID". On failure the client's token
// state is unchanged. Calling Authorize again overwrites any previous token.
func (c *Client) Authorize(ctx context.Context, pin string) error {
	if pin == "" {
		return ErrEmptyPin
	}

	token, err := c.oauthConfig().Exchange(ctx, pin,
		oauth2.SetAuthURLParam("grant_type", "pin"),
		oauth2.SetAuthURLParam("pin", pin),
	)
	if err != nil {
		return fmt.Errorf("pin exchange failed: %w", err)
	}

	c.SetAccessToken(token.AccessToken)
	c.logger.Info().Msg("Authorized with Imgur, switching to bearer authentication")
	return nil
}
