package config

// Config represents the complete configuration structure
type Config struct {
	Imgur   ImgurConfig   `mapstructure:"imgur"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ImgurConfig holds Imgur application credentials
type ImgurConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	// AccessToken is an optional bearer token obtained from a previous
	// authorize run. When set the client skips anonymous Client-ID auth.
	AccessToken string `mapstructure:"access_token"`
}

// UploadConfig contains image upload settings
type UploadConfig struct {
	// MaxDimension caps the longest side of raster uploads, in pixels.
	// Zero disables downscaling.
	MaxDimension int `mapstructure:"max_dimension"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
