package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/joho/godotenv"
)

// NovaFileName is the optional project configuration file
const NovaFileName = "nova.toml"

// loadEnvFiles loads .env files so nova.toml can reference secrets
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadNovaFile loads and parses nova.toml if it exists.
// Returns (nil, nil) when nova.toml does not exist.
func loadNovaFile(projectRoot string) (*config.NovaFileConfig, error) {
	path := filepath.Join(projectRoot, NovaFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.NovaFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse nova.toml: %w", err)
	}

	// Expand environment variables in string fields
	cfg.API.URL = os.ExpandEnv(cfg.API.URL)
	cfg.API.ShowcaseURL = os.ExpandEnv(cfg.API.ShowcaseURL)
	cfg.IPFS.Gateway = os.ExpandEnv(cfg.IPFS.Gateway)
	cfg.Phases.MemberPhaseOneStart = os.ExpandEnv(cfg.Phases.MemberPhaseOneStart)
	cfg.OAuth.Discord.ClientID = os.ExpandEnv(cfg.OAuth.Discord.ClientID)
	cfg.OAuth.Discord.ClientSecret = os.ExpandEnv(cfg.OAuth.Discord.ClientSecret)

	return &cfg, nil
}
