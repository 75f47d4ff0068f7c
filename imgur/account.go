package imgur

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAccount retrieves standard account information for the given username.
func (c *Client) GetAccount(ctx context.Context, username string) (*Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username: %w", ErrEmptyID)
	}

	account, err := call[Account](ctx, c, http.MethodGet, "account/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", username, err)
	}

	c.logger.Debug().Str("username", username).Int64("account_id", account.ID).
		Msg("Retrieved account from Imgur")
	return &account, nil
}
