package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .nova/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, commands that act on quests require --account\n")
	} else {
		fmt.Fprintln(r.out, "📋 Current config:")

		account := result.Config.Account
		if account == "" {
			account = "(not set)"
		}
		fmt.Fprintf(r.out, "Account:   %s\n", account)

		if result.Config.APIURL != "" {
			fmt.Fprintf(r.out, "API URL:   %s\n", result.Config.APIURL)
		}

		if q := result.Config.SelectedQuest; q != nil {
			fmt.Fprintf(r.out, "Selected:  quest #%d of %s\n", q.QuestID, q.DaoAddress)
		}
	}

	if rt := result.Runtime; rt != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "⚙️  Effective settings:")
		fmt.Fprintf(r.out, "API:       %s\n", rt.APIURL)
		fmt.Fprintf(r.out, "Showcase:  %s\n", rt.ShowcaseURL)
		fmt.Fprintf(r.out, "IPFS:      %s\n", rt.IPFSGateway)
		fmt.Fprintf(r.out, "Phase one: %s\n", FormatDate(rt.MemberPhases.PhaseOneStartDate))
		if rt.CacheEnabled {
			fmt.Fprintf(r.out, "Cache TTL: %s\n", rt.CacheTTL)
		} else {
			fmt.Fprintf(r.out, "Cache:     disabled\n")
		}
		if rt.ConfigSource == "nova.toml" {
			fmt.Fprintf(r.out, "\n📦 Config source: nova.toml\n")
		}
	}

	if result.Exists {
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyAccount:
		fmt.Fprintf(r.out, "✅ Removed account from config (quest actions will require --account)\n")
	case config.ConfigKeyAPIURL:
		fmt.Fprintf(r.out, "✅ Reset API URL to the default\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
