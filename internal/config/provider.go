package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DataDirName is the per-project directory holding local state
	DataDirName = ".nova"

	DefaultAPIURL              = "https://api.aut.id/api"
	DefaultShowcaseURL         = "https://showcase.aut.id"
	DefaultMemberPhaseOneStart = "2023-10-02T16:00:00Z"
	DefaultDiscordAuthURL      = "https://discord.com/oauth2/authorize"
	DefaultDiscordTokenURL     = "https://discord.com/api/oauth2/token"
	DefaultDiscordRedirectPort = 7654
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	loadEnvFiles(projectRoot)

	novaFile, err := loadNovaFile(projectRoot)
	if err != nil {
		return nil, err
	}
	configSource := "defaults"
	if novaFile != nil {
		configSource = "nova.toml"
		applyNovaFileDefaults(v, novaFile)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		AuthToken:      v.GetString("auth_token"),
		APIURL:         strings.TrimRight(v.GetString("api_url"), "/"),
		ShowcaseURL:    strings.TrimRight(v.GetString("showcase_url"), "/"),
		IPFSGateway:    v.GetString("ipfs_gateway"),
		CacheTTL:       v.GetDuration("cache_ttl"),
		CacheEnabled:   !v.GetBool("no_cache"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Output:         strings.ToLower(v.GetString("output")),
		Timeout:        v.GetDuration("timeout"),
		ConfigSource:   configSource,
	}

	switch cfg.Output {
	case "", "table", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output format %q (valid: table, json, yaml)", cfg.Output)
	}
	if cfg.Output == "table" {
		cfg.Output = ""
	}

	if account := v.GetString("account"); account != "" {
		if !common.IsHexAddress(account) {
			return nil, fmt.Errorf("%w: account %q", domain.ErrInvalidAddress, account)
		}
		cfg.Account = common.HexToAddress(account)
	}

	phaseOne, err := models.ParseDate(v.GetString("member_phase_one_start"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse member phase one start: %w", err)
	}
	cfg.MemberPhases.PhaseOneStartDate = phaseOne

	cfg.Discord = config.OAuthConfig{
		ClientID:     v.GetString("discord_client_id"),
		ClientSecret: v.GetString("discord_client_secret"),
		AuthURL:      v.GetString("discord_auth_url"),
		TokenURL:     v.GetString("discord_token_url"),
		Scopes:       v.GetStringSlice("discord_scopes"),
		RedirectPort: v.GetInt("discord_redirect_port"),
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find nova.toml.
// Without one the current directory is the project root.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, NovaFileName)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Local per-project overrides written by `nova config set`
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("NOVA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("showcase_url", DefaultShowcaseURL)
	v.SetDefault("ipfs_gateway", domain.DefaultIPFSGateway)
	v.SetDefault("cache_ttl", "30s")
	v.SetDefault("member_phase_one_start", DefaultMemberPhaseOneStart)
	v.SetDefault("discord_auth_url", DefaultDiscordAuthURL)
	v.SetDefault("discord_token_url", DefaultDiscordTokenURL)
	v.SetDefault("discord_scopes", []string{"identify", "guilds"})
	v.SetDefault("discord_redirect_port", DefaultDiscordRedirectPort)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// applyNovaFileDefaults layers nova.toml values under env, flags and local config
func applyNovaFileDefaults(v *viper.Viper, f *config.NovaFileConfig) {
	setIf := func(key, value string) {
		if value != "" {
			v.SetDefault(key, value)
		}
	}

	setIf("api_url", f.API.URL)
	setIf("showcase_url", f.API.ShowcaseURL)
	setIf("ipfs_gateway", f.IPFS.Gateway)
	setIf("member_phase_one_start", f.Phases.MemberPhaseOneStart)
	setIf("cache_ttl", f.Cache.TTL)
	if f.Cache.Disabled {
		v.SetDefault("no_cache", true)
	}

	d := f.OAuth.Discord
	setIf("discord_client_id", d.ClientID)
	setIf("discord_client_secret", d.ClientSecret)
	setIf("discord_auth_url", d.AuthURL)
	setIf("discord_token_url", d.TokenURL)
	if len(d.Scopes) > 0 {
		v.SetDefault("discord_scopes", d.Scopes)
	}
	if d.RedirectPort > 0 {
		v.SetDefault("discord_redirect_port", d.RedirectPort)
	}
}
