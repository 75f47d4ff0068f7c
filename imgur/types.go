package imgur

import "time"

// Account represents standard account information for an Imgur user.
type Account struct {
	ID            int64   `json:"id"`
	URL           string  `json:"url"`
	Bio           string  `json:"bio"`
	Reputation    float64 `json:"reputation"`
	Created       int64   `json:"created"`
	ProExpiration any     `json:"pro_expiration"`
}

// CreatedTime returns the account creation time.
func (a *Account) CreatedTime() time.Time {
	return time.Unix(a.Created, 0)
}

// Image represents an Imgur image resource.
type Image struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Datetime    int64  `json:"datetime"`
	Type        string `json:"type"`
	Animated    bool   `json:"animated"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int64  `json:"size"`
	Views       int64  `json:"views"`
	Bandwidth   int64  `json:"bandwidth"`
	Favorite    bool   `json:"favorite"`
	NSFW        bool   `json:"nsfw"`
	Section     string `json:"section"`
	AccountURL  string `json:"account_url"`
	AccountID   int64  `json:"account_id"`
	DeleteHash  string `json:"deletehash"`
	Name        string `json:"name"`
	Link        string `json:"link"`
}

// CreatedTime returns the image upload time.
func (i *Image) CreatedTime() time.Time {
	return time.Unix(i.Datetime, 0)
}

// IsAnonymous reports whether the image was uploaded without an account.
// Anonymous images can only be modified via their deletehash.
func (i *Image) IsAnonymous() bool {
	return i.AccountID == 0
}

// Album represents an Imgur album resource.
type Album struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Datetime    int64   `json:"datetime"`
	Cover       string  `json:"cover"`
	CoverWidth  int     `json:"cover_width"`
	CoverHeight int     `json:"cover_height"`
	AccountURL  string  `json:"account_url"`
	AccountID   int64   `json:"account_id"`
	Privacy     string  `json:"privacy"`
	Layout      string  `json:"layout"`
	Views       int64   `json:"views"`
	Link        string  `json:"link"`
	Favorite    bool    `json:"favorite"`
	NSFW        bool    `json:"nsfw"`
	Section     string  `json:"section"`
	ImagesCount int     `json:"images_count"`
	DeleteHash  string  `json:"deletehash"`
	Images      []Image `json:"images"`
}

// CreatedTime returns the album creation time.
func (a *Album) CreatedTime() time.Time {
	return time.Unix(a.Datetime, 0)
}

// UploadRequest describes an image upload. Image is required and holds
// base64-encoded data or a URL depending on Type; all other fields are
// optional and omitted from the request when empty.
type UploadRequest struct {
	// Image is the base64 data or URL of the image.
	Image string
	// Album is the id of the album to add the image to. For anonymous
	// albums this should be the album's deletehash.
	Album string
	// Type is the kind of payload being sent: file, base64 or URL.
	Type string
	// Name is the file name.
	Name string
	// Title is the image title.
	Title string
	// Description is the image description.
	Description string
}
