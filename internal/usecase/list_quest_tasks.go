package usecase

import (
	"context"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ListQuestTasksParams contains parameters for listing the tasks of a quest
type ListQuestTasksParams struct {
	DaoAddress common.Address
	QuestID    int
}

// ListQuestTasksResult contains the tasks of a quest
type ListQuestTasksResult struct {
	Nova        *models.Nova
	Quest       *models.Quest
	Tasks       []models.Task
	Eligibility domain.Eligibility
	CanSubmit   bool
}

// ListQuestTasks lists the onboarding tasks of a quest
type ListQuestTasks struct {
	cfg      *config.RuntimeConfig
	repo     NovaRepository
	client   OnboardingClient
	resolver *EligibilityResolver
	progress ProgressSink
}

// NewListQuestTasks creates a new ListQuestTasks use case
func NewListQuestTasks(
	cfg *config.RuntimeConfig,
	repo NovaRepository,
	client OnboardingClient,
	resolver *EligibilityResolver,
	progress ProgressSink,
) *ListQuestTasks {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ListQuestTasks{
		cfg:      cfg,
		repo:     repo,
		client:   client,
		resolver: resolver,
		progress: progress,
	}
}

// Run executes the list quest tasks use case
func (uc *ListQuestTasks) Run(ctx context.Context, params ListQuestTasksParams) (*ListQuestTasksResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "loading", Message: "Loading tasks...", Spinner: true})

	nova, quest, err := findNovaQuest(ctx, uc.repo, params.DaoAddress, params.QuestID)
	if err != nil {
		return nil, err
	}

	eval, err := uc.resolver.Resolve(ctx, nova, quest)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.client.ListQuestTasks(ctx, uc.cfg.Account, nova.OnboardingQuestAddress, quest.QuestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	result := &ListQuestTasksResult{
		Nova:        nova,
		Quest:       quest,
		Eligibility: eval.Eligibility,
		CanSubmit:   domain.CanSubmitTask(eval.Eligibility),
	}
	if tasks != nil {
		result.Tasks = tasks.Tasks
	}

	return result, nil
}
