package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ApplyForQuestParams contains parameters for applying to a quest
type ApplyForQuestParams struct {
	DaoAddress common.Address
	QuestID    int
}

// ApplyForQuestResult contains the result of applying to a quest
type ApplyForQuestResult struct {
	Application *models.QuestApplication
	Applied     *models.AppliedQuest
}

// ApplyForQuest applies the configured account to a quest.
// Only one application may be in flight at a time.
type ApplyForQuest struct {
	cfg      *config.RuntimeConfig
	repo     NovaRepository
	client   OnboardingClient
	phases   PhasesCache
	resolver *EligibilityResolver
	listener QuestSelectionListener
	progress ProgressSink
	log      *slog.Logger

	mu    sync.Mutex
	state domain.ApplyingState
}

// NewApplyForQuest creates a new ApplyForQuest use case
func NewApplyForQuest(
	cfg *config.RuntimeConfig,
	repo NovaRepository,
	client OnboardingClient,
	phases PhasesCache,
	resolver *EligibilityResolver,
	listener QuestSelectionListener,
	progress ProgressSink,
	log *slog.Logger,
) *ApplyForQuest {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ApplyForQuest{
		cfg:      cfg,
		repo:     repo,
		client:   client,
		phases:   phases,
		resolver: resolver,
		listener: listener,
		progress: progress,
		log:      log.With("component", "ApplyForQuest"),
	}
}

// State returns the in-flight application, if any
func (uc *ApplyForQuest) State() domain.ApplyingState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

func (uc *ApplyForQuest) begin() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state.Active {
		return domain.ErrApplyInProgress
	}
	uc.state = domain.ApplyingState{Active: true}
	return nil
}

func (uc *ApplyForQuest) track(application *models.QuestApplication) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Quest = application
}

func (uc *ApplyForQuest) finish() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = domain.ApplyingState{}
}

// Run executes the apply use case
func (uc *ApplyForQuest) Run(ctx context.Context, params ApplyForQuestParams) (*ApplyForQuestResult, error) {
	if !uc.cfg.HasAccount() {
		return nil, domain.ErrAccountRequired
	}
	if err := uc.begin(); err != nil {
		return nil, err
	}
	defer uc.finish()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "loading", Message: "Loading quest...", Spinner: true})
	nova, quest, err := findNovaQuest(ctx, uc.repo, params.DaoAddress, params.QuestID)
	if err != nil {
		return nil, err
	}

	application := models.NewQuestApplication(nova, *quest)
	uc.track(application)

	// Eligibility is re-evaluated against the current cache entry
	eval, err := uc.resolver.Resolve(ctx, nova, quest)
	if err != nil {
		return nil, err
	}
	if eval.Eligibility.HasAppliedForQuest {
		return nil, domain.IneligibleErr{QuestID: quest.QuestID, Reason: "already applied to this quest"}
	}
	if !eval.Eligibility.CanApplyForAQuest {
		reason := domain.BlockedReason(eval.Eligibility)
		if eval.IsOwner {
			reason = "nova admins can not apply to their own quests"
		}
		return nil, domain.IneligibleErr{QuestID: quest.QuestID, Reason: reason}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "applying", Message: fmt.Sprintf("Applying for %s...", quest.Metadata.Name), Spinner: true})
	if err := uc.client.ApplyForQuest(ctx, uc.cfg.Account, application); err != nil {
		return nil, fmt.Errorf("failed to apply for quest: %w", err)
	}

	entry := &models.AppliedQuest{
		OnboardingQuestAddress: application.OnboardingQuestAddress,
		QuestID:                application.QuestID,
		DaoAddress:             application.DaoAddress,
	}
	if err := uc.phases.SaveAppliedQuest(ctx, uc.cfg.Account, entry); err != nil {
		return nil, fmt.Errorf("applied for quest but failed to record it: %w", err)
	}

	if err := uc.listener.OnApplyForQuest(ctx, application); err != nil {
		uc.log.Warn("failed to record quest selection", "error", err)
	}

	uc.log.Debug("applied for quest", "quest", application.QuestID, "dao", application.DaoAddress.Hex())

	return &ApplyForQuestResult{
		Application: application,
		Applied:     entry,
	}, nil
}
