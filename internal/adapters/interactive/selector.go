package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNova selects a nova from a list
func (s *SelectorAdapter) SelectNova(ctx context.Context, novas []*models.Nova, prompt string) (*models.Nova, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(novas) == 0 {
		return nil, fmt.Errorf("no novas provided for selection")
	}

	// If only one match, return it directly
	if len(novas) == 1 {
		return novas[0], nil
	}

	options := formatNovaOptions(novas)
	index, err := s.run(prompt, options)
	if err != nil {
		return nil, err
	}
	return novas[index], nil
}

// SelectQuest selects a quest of nova
func (s *SelectorAdapter) SelectQuest(ctx context.Context, nova *models.Nova, prompt string) (*models.Quest, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	quests := nova.Properties.Quests
	if len(quests) == 0 {
		return nil, fmt.Errorf("%s has no quests", nova.Name)
	}
	if len(quests) == 1 {
		return &quests[0], nil
	}

	options := formatQuestOptions(nova)
	index, err := s.run(prompt, options)
	if err != nil {
		return nil, err
	}
	return &quests[index], nil
}

func (s *SelectorAdapter) run(prompt string, options []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return index, nil
}

// formatNovaOptions creates display strings for nova selection
func formatNovaOptions(novas []*models.Nova) []string {
	options := make([]string, len(novas))
	for i, nova := range novas {
		name := color.New(color.FgWhite, color.Bold).Sprint(nova.Name)
		market := color.New(color.FgBlue).Sprint(nova.MarketLabel())
		options[i] = fmt.Sprintf("%s (%s) %s", name, market, nova.DaoAddress.Hex())
	}
	return options
}

// formatQuestOptions creates display strings for quest selection
func formatQuestOptions(nova *models.Nova) []string {
	quests := nova.Properties.Quests
	options := make([]string, len(quests))
	for i, quest := range quests {
		name := color.New(color.FgWhite, color.Bold).Sprint(quest.Metadata.Name)
		role := color.New(color.FgBlue).Sprint(nova.RoleName(quest.Role))
		if quest.Active {
			options[i] = fmt.Sprintf("#%d %s (%s)", quest.QuestID, name, role)
		} else {
			inactive := color.New(color.FgYellow).Sprint("[inactive]")
			options[i] = fmt.Sprintf("#%d %s %s (%s)", quest.QuestID, name, inactive, role)
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.InteractiveSelector = (*SelectorAdapter)(nil)
