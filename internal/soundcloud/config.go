package soundcloud

// Config holds the SoundCloud proxy settings.
type Config struct {
	ClientID     string `env:"SOUNDCLOUD_CLIENT_ID"`
	ClientSecret string `env:"SOUNDCLOUD_CLIENT_SECRET"`
	RedirectURI  string `env:"SOUNDCLOUD_REDIRECT_URI"`
	APIBaseURL   string `env:"SOUNDCLOUD_API_BASE_URL" envDefault:"https://api.soundcloud.com"`
	ConnectURL   string `env:"SOUNDCLOUD_CONNECT_URL" envDefault:"https://soundcloud.com/connect"`
	Timeout      int    `env:"SOUNDCLOUD_TIMEOUT" envDefault:"30"`
}
