package config

// NovaFileConfig represents the nova.toml project file
type NovaFileConfig struct {
	API    APISection    `toml:"api"`
	IPFS   IPFSSection   `toml:"ipfs"`
	Phases PhasesSection `toml:"phases"`
	Cache  CacheSection  `toml:"cache"`
	OAuth  OAuthSection  `toml:"oauth"`
}

// APISection is the [api] table
type APISection struct {
	URL         string `toml:"url,omitempty"`
	ShowcaseURL string `toml:"showcase_url,omitempty"`
}

// IPFSSection is the [ipfs] table
type IPFSSection struct {
	Gateway string `toml:"gateway,omitempty"`
}

// PhasesSection is the [phases] table
type PhasesSection struct {
	MemberPhaseOneStart string `toml:"member_phase_one_start,omitempty"`
}

// CacheSection is the [cache] table
type CacheSection struct {
	TTL      string `toml:"ttl,omitempty"`
	Disabled bool   `toml:"disabled,omitempty"`
}

// OAuthSection is the [oauth] table
type OAuthSection struct {
	Discord OAuthProviderSection `toml:"discord"`
}

// OAuthProviderSection is an [oauth.<provider>] table
type OAuthProviderSection struct {
	ClientID     string   `toml:"client_id,omitempty"`
	ClientSecret string   `toml:"client_secret,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	AuthURL      string   `toml:"auth_url,omitempty"`
	TokenURL     string   `toml:"token_url,omitempty"`
	Scopes       []string `toml:"scopes,omitempty"`
	RedirectPort int      `toml:"redirect_port,omitempty"`
}
