package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Identity
	Account   common.Address // zero when not connected
	AuthToken string         // bearer token for the onboarding and cache APIs

	// Remote endpoints
	APIURL      string
	ShowcaseURL string
	IPFSGateway string

	// Rollout gates
	MemberPhases MemberPhasesConfig

	// Response cache
	CacheTTL     time.Duration
	CacheEnabled bool

	// OAuth providers
	Discord OAuthConfig

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool   // Output in JSON format
	Output         string // "", "json" or "yaml"
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "nova.toml" or "defaults"
}

// MemberPhasesConfig holds the global member phase gates
type MemberPhasesConfig struct {
	PhaseOneStartDate time.Time
}

// OAuthConfig configures an OAuth2 authorization-code client
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	Scopes       []string
	RedirectPort int
}

// HasAccount reports whether an account address is configured
func (c *RuntimeConfig) HasAccount() bool {
	return c.Account != (common.Address{})
}

// StructuredOutput reports whether output should be machine readable
func (c *RuntimeConfig) StructuredOutput() bool {
	return c.JSON || c.Output == "json" || c.Output == "yaml"
}
