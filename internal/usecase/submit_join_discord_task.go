package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// JoinDiscordTaskParams identifies a join-discord task
type JoinDiscordTaskParams struct {
	DaoAddress common.Address
	QuestID    int
	TaskID     int
}

// JoinDiscordTarget is a resolved join-discord task ready for submission
type JoinDiscordTarget struct {
	Nova      *models.Nova
	Quest     *models.Quest
	Task      *models.Task
	InviteURL string
}

// SubmitJoinDiscordResult contains the result of a join-discord submission
type SubmitJoinDiscordResult struct {
	Target    *JoinDiscordTarget
	Submitted bool
	Cancelled bool
}

// SubmitJoinDiscordTask submits a join-discord task after a Discord authorization
type SubmitJoinDiscordTask struct {
	cfg      *config.RuntimeConfig
	repo     NovaRepository
	client   OnboardingClient
	resolver *EligibilityResolver
	oauth    OAuthProvider
	progress ProgressSink
}

// NewSubmitJoinDiscordTask creates a new SubmitJoinDiscordTask use case
func NewSubmitJoinDiscordTask(
	cfg *config.RuntimeConfig,
	repo NovaRepository,
	client OnboardingClient,
	resolver *EligibilityResolver,
	oauth OAuthProvider,
	progress ProgressSink,
) *SubmitJoinDiscordTask {
	if progress == nil {
		progress = NopProgress{}
	}
	return &SubmitJoinDiscordTask{
		cfg:      cfg,
		repo:     repo,
		client:   client,
		resolver: resolver,
		oauth:    oauth,
		progress: progress,
	}
}

// Resolve finds the task and checks that it can be submitted
func (uc *SubmitJoinDiscordTask) Resolve(ctx context.Context, params JoinDiscordTaskParams) (*JoinDiscordTarget, error) {
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
	if !domain.CanSubmitTask(eval.Eligibility) {
		return nil, fmt.Errorf("%w: apply for the quest and wait for it to start", domain.ErrTaskNotSubmittable)
	}

	tasks, err := uc.client.ListQuestTasks(ctx, uc.cfg.Account, nova.OnboardingQuestAddress, quest.QuestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	task, ok := tasks.FindTask(params.TaskID)
	if !ok || task.TaskType != models.TaskTypeJoinDiscord {
		return nil, domain.NotFoundErr{Kind: "join-discord task", Ref: fmt.Sprintf("%d", params.TaskID)}
	}
	if task.Status != models.TaskStatusCreated {
		return nil, fmt.Errorf("%w: task is %s", domain.ErrTaskNotSubmittable, task.Status)
	}

	return &JoinDiscordTarget{
		Nova:      nova,
		Quest:     quest,
		Task:      task,
		InviteURL: task.InviteURL(),
	}, nil
}

// Submit authorizes with Discord and submits the task.
// An abandoned authorization is reported as Cancelled, not as an error.
func (uc *SubmitJoinDiscordTask) Submit(ctx context.Context, target *JoinDiscordTarget) (*SubmitJoinDiscordResult, error) {
	result := &SubmitJoinDiscordResult{Target: target}

	token, err := uc.oauth.Authorize(ctx)
	if errors.Is(err, domain.ErrOAuthCancelled) {
		result.Cancelled = true
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("discord authorization failed: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "submitting", Message: "Submitting task...", Spinner: true})
	err = uc.client.SubmitJoinDiscordTask(ctx, JoinDiscordSubmission{
		UserAddress:             uc.cfg.Account,
		Task:                    target.Task,
		BearerToken:             token.AccessToken,
		OnboardingPluginAddress: target.Nova.OnboardingQuestAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit task: %w", err)
	}
	result.Submitted = true

	return result, nil
}
