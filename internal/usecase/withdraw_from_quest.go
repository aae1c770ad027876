package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

const (
	WithdrawConfirmTitle = "Are you sure you want to withdraw from quest?"
	WithdrawConfirmLabel = "Withdraw"
)

// WithdrawFromQuestParams contains parameters for withdrawing from a quest
type WithdrawFromQuestParams struct {
	DaoAddress  common.Address
	QuestID     int
	SkipConfirm bool
}

// WithdrawResult reports what the withdrawal did.
// CleanupErr is set when the remote withdrawal succeeded but local bookkeeping failed.
type WithdrawResult struct {
	Nova       *models.Nova
	Quest      *models.Quest
	Withdrawn  bool
	Cancelled  bool
	CleanupErr error
}

// WithdrawFromQuest withdraws the configured account from the quest it applied to
type WithdrawFromQuest struct {
	cfg       *config.RuntimeConfig
	repo      NovaRepository
	client    OnboardingClient
	phases    PhasesCache
	resolver  *EligibilityResolver
	listener  QuestSelectionListener
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger

	withdrawing atomic.Bool
}

// NewWithdrawFromQuest creates a new WithdrawFromQuest use case
func NewWithdrawFromQuest(
	cfg *config.RuntimeConfig,
	repo NovaRepository,
	client OnboardingClient,
	phases PhasesCache,
	resolver *EligibilityResolver,
	listener QuestSelectionListener,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *WithdrawFromQuest {
	if progress == nil {
		progress = NopProgress{}
	}
	return &WithdrawFromQuest{
		cfg:       cfg,
		repo:      repo,
		client:    client,
		phases:    phases,
		resolver:  resolver,
		listener:  listener,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("component", "WithdrawFromQuest"),
	}
}

// Withdrawing reports whether a withdrawal is in flight
func (uc *WithdrawFromQuest) Withdrawing() bool {
	return uc.withdrawing.Load()
}

// Run executes the withdraw use case
func (uc *WithdrawFromQuest) Run(ctx context.Context, params WithdrawFromQuestParams) (*WithdrawResult, error) {
	if !uc.cfg.HasAccount() {
		return nil, domain.ErrAccountRequired
	}

	nova, quest, err := findNovaQuest(ctx, uc.repo, params.DaoAddress, params.QuestID)
	if err != nil {
		return nil, err
	}

	eval, err := uc.resolver.Resolve(ctx, nova, quest)
	if err != nil {
		return nil, err
	}
	if !eval.Eligibility.HasAppliedForQuest {
		return nil, domain.ErrNotApplied
	}

	result := &WithdrawResult{Nova: nova, Quest: quest}

	if !params.SkipConfirm {
		ok, err := uc.confirmer.Confirm(ctx, WithdrawConfirmTitle, WithdrawConfirmLabel)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			result.Cancelled = true
			return result, nil
		}
	}

	uc.withdrawing.Store(true)
	defer uc.withdrawing.Store(false)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "withdrawing", Message: fmt.Sprintf("Withdrawing from %s...", quest.Metadata.Name), Spinner: true})
	if err := uc.client.WithdrawFromQuest(ctx, nova.OnboardingQuestAddress, quest.QuestID); err != nil {
		return nil, fmt.Errorf("failed to withdraw from quest: %w", err)
	}
	result.Withdrawn = true

	// Cleanup runs in order; every step is attempted and failures are reported together
	var cleanup []error
	if err := uc.listener.OnApplyForQuest(ctx, nil); err != nil {
		cleanup = append(cleanup, fmt.Errorf("failed to clear quest selection: %w", err))
	}
	if err := uc.phases.DeleteAppliedQuest(ctx, uc.cfg.Account); err != nil {
		cleanup = append(cleanup, fmt.Errorf("failed to evict applied quest: %w", err))
	}
	result.CleanupErr = errors.Join(cleanup...)
	if result.CleanupErr != nil {
		uc.log.Warn("withdrawal cleanup incomplete", "error", result.CleanupErr)
	}

	return result, nil
}
