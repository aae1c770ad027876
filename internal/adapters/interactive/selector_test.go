package interactive

import (
	"context"
	"testing"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFuzzySearchFunc(t *testing.T) {
	items := []string{"Aut Labs (DeFi & Payments)", "Nova Builders (Open-Source & Infra)"}
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{"", 0, true},
		{"aut", 0, true},
		{"AUT", 0, true},
		{"nvbld", 1, true},
		{"zzz", 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, search(tt.input, tt.index), "input %q", tt.input)
	}
}

func TestSelectorAdapter_ShortCircuits(t *testing.T) {
	ctx := context.Background()
	single := []*models.Nova{{Name: "Only"}}

	t.Run("single nova needs no prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		nova, err := s.SelectNova(ctx, single, "Select")
		require.NoError(t, err)
		assert.Equal(t, "Only", nova.Name)
	})

	t.Run("non-interactive refuses", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectNova(ctx, single, "Select")
		assert.Error(t, err)
	})

	t.Run("no quests", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectQuest(ctx, &models.Nova{Name: "Empty"}, "Select")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Empty has no quests")
	})

	t.Run("confirmer refuses non-interactive", func(t *testing.T) {
		c := NewConfirmerAdapter(&config.RuntimeConfig{NonInteractive: true})
		ok, err := c.Confirm(ctx, "Sure?", "Withdraw")
		assert.False(t, ok)
		assert.Error(t, err)
	})
}

func TestFormatQuestOptions(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	nova := &models.Nova{Properties: models.NovaProperties{
		Roles: []models.Role{{ID: 1, RoleName: "Builder"}},
		Quests: []models.Quest{
			{QuestID: 1, Role: 1, Active: true, Metadata: models.QuestMetadata{Name: "First"}},
			{QuestID: 2, Role: 5, Metadata: models.QuestMetadata{Name: "Second"}},
		},
	}}

	assert.Equal(t, []string{"#1 First (Builder)", "#2 Second [inactive] (N/A)"}, formatQuestOptions(nova))
}
