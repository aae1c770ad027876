package fs

import (
	"context"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// SelectionListenerAdapter remembers the quest being applied for in the local config
type SelectionListenerAdapter struct {
	store *LocalConfigStoreAdapter
}

// NewSelectionListenerAdapter creates a new SelectionListenerAdapter
func NewSelectionListenerAdapter(store *LocalConfigStoreAdapter) *SelectionListenerAdapter {
	return &SelectionListenerAdapter{store: store}
}

// OnApplyForQuest records application as the selected quest; nil clears it
func (l *SelectionListenerAdapter) OnApplyForQuest(ctx context.Context, application *models.QuestApplication) error {
	return l.store.Update(func(cfg *config.LocalConfig) {
		if application == nil {
			cfg.SelectedQuest = nil
			return
		}
		cfg.SelectedQuest = &config.SelectedQuest{
			QuestID:                application.QuestID,
			OnboardingQuestAddress: application.OnboardingQuestAddress.Hex(),
			DaoAddress:             application.DaoAddress.Hex(),
		}
	})
}

var _ usecase.QuestSelectionListener = (*SelectionListenerAdapter)(nil)
