package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn 秒
	ExpiresIn int64 `json:"expires_in" yaml:"expires_in"`
	// RefreshWindow 秒, tokens closer than this to expiry get a new one in X-New-Access-Token
	RefreshWindow int64 `json:"refresh_window" yaml:"refresh_window"`
}
