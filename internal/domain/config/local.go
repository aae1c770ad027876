package config

// LocalConfig represents the local nova configuration
type LocalConfig struct {
	Account       string         `json:"account"`
	APIURL        string         `json:"api_url,omitempty"`
	SelectedQuest *SelectedQuest `json:"selected_quest,omitempty"`
}

// SelectedQuest is the quest last handed to the apply flow
type SelectedQuest struct {
	QuestID                int    `json:"quest_id"`
	OnboardingQuestAddress string `json:"onboarding_quest_address"`
	DaoAddress             string `json:"dao_address"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyAccount ConfigKey = "account"
	ConfigKeyAPIURL  ConfigKey = "api-url"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyAccount,
		ConfigKeyAPIURL,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "api" && validKey == ConfigKeyAPIURL) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "api" -> "api-url")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "api" {
		return ConfigKeyAPIURL
	}
	return ConfigKey(key)
}
