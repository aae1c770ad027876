package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

// OnboardingClientAdapter performs onboarding mutations through the API
type OnboardingClientAdapter struct {
	client *Client
}

// NewOnboardingClientAdapter creates a new OnboardingClientAdapter
func NewOnboardingClientAdapter(client *Client) *OnboardingClientAdapter {
	return &OnboardingClientAdapter{client: client}
}

type applyRequest struct {
	Account                common.Address `json:"account"`
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress"`
	DaoAddress             common.Address `json:"daoAddress"`
	QuestID                int            `json:"questId"`
}

type withdrawRequest struct {
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress"`
	QuestID                int            `json:"questId"`
}

type joinDiscordRequest struct {
	UserAddress             common.Address `json:"userAddress"`
	TaskID                  int            `json:"taskId"`
	TaskType                int            `json:"taskType"`
	OnboardingPluginAddress common.Address `json:"onboardingPluginAddress"`
	BearerToken             string         `json:"bearerToken"`
}

// ApplyForQuest applies account to a quest
func (a *OnboardingClientAdapter) ApplyForQuest(ctx context.Context, account common.Address, application *models.QuestApplication) error {
	if err := a.client.requireAuth(); err != nil {
		return err
	}
	err := a.client.do(ctx, http.MethodPost, "/onboarding/quests/apply", nil, applyRequest{
		Account:                account,
		OnboardingQuestAddress: application.OnboardingQuestAddress,
		DaoAddress:             application.DaoAddress,
		QuestID:                application.QuestID,
	}, nil)
	if err != nil {
		return err
	}
	a.client.invalidate(ctx, questTag(application.OnboardingQuestAddress, application.QuestID))
	return nil
}

// WithdrawFromQuest withdraws the authenticated account from a quest
func (a *OnboardingClientAdapter) WithdrawFromQuest(ctx context.Context, onboardingQuestAddress common.Address, questID int) error {
	if err := a.client.requireAuth(); err != nil {
		return err
	}
	err := a.client.do(ctx, http.MethodPost, "/onboarding/quests/withdraw", nil, withdrawRequest{
		OnboardingQuestAddress: onboardingQuestAddress,
		QuestID:                questID,
	}, nil)
	if err != nil {
		return err
	}
	a.client.invalidate(ctx, questTag(onboardingQuestAddress, questID))
	return nil
}

// ListQuestTasks returns the tasks of a quest as seen by account
func (a *OnboardingClientAdapter) ListQuestTasks(ctx context.Context, account common.Address, onboardingQuestAddress common.Address, questID int) (*models.QuestTasks, error) {
	query := url.Values{}
	if account != (common.Address{}) {
		query.Set("userAddress", account.Hex())
	}

	tasks := &models.QuestTasks{}
	path := fmt.Sprintf("/onboarding/quests/%s/%d/tasks", onboardingQuestAddress.Hex(), questID)
	if err := a.client.getCached(ctx, path, query, tasks, tagTasks, questTag(onboardingQuestAddress, questID)); err != nil {
		return nil, err
	}
	if tasks.OnboardingQuestAddress == (common.Address{}) {
		tasks.OnboardingQuestAddress = onboardingQuestAddress
		tasks.QuestID = questID
	}
	return tasks, nil
}

// SubmitJoinDiscordTask submits a join-discord task with the user's Discord token
func (a *OnboardingClientAdapter) SubmitJoinDiscordTask(ctx context.Context, submission usecase.JoinDiscordSubmission) error {
	if err := a.client.requireAuth(); err != nil {
		return err
	}
	err := a.client.do(ctx, http.MethodPost, "/onboarding/tasks/join-discord", nil, joinDiscordRequest{
		UserAddress:             submission.UserAddress,
		TaskID:                  submission.Task.TaskID,
		TaskType:                int(submission.Task.TaskType),
		OnboardingPluginAddress: submission.OnboardingPluginAddress,
		BearerToken:             submission.BearerToken,
	}, nil)
	if err != nil {
		return err
	}
	a.client.invalidate(ctx, tagTasks)
	return nil
}

const tagTasks = "tasks"

func questTag(onboardingQuestAddress common.Address, questID int) string {
	return fmt.Sprintf("quest:%s:%d", onboardingQuestAddress.Hex(), questID)
}

var _ usecase.OnboardingClient = (*OnboardingClientAdapter)(nil)
