package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type joinDiscordFixture struct {
	repo   *MockNovaRepository
	client *MockOnboardingClient
	oauth  *MockOAuthProvider
	phases *memoryPhasesCache
	uc     *usecase.SubmitJoinDiscordTask
}

func newJoinDiscordFixture(t *testing.T, quest models.Quest, tasks ...models.Task) *joinDiscordFixture {
	t.Helper()
	cfg := testConfig()
	f := &joinDiscordFixture{
		repo:   &MockNovaRepository{},
		client: &MockOnboardingClient{},
		oauth:  &MockOAuthProvider{},
		phases: newMemoryPhasesCache(),
	}
	f.repo.On("GetNova", mock.Anything, daoAddr).Return(testNova(quest), nil)
	f.client.On("ListQuestTasks", mock.Anything, accountAddr, onboardingAddr, quest.QuestID).
		Return(&models.QuestTasks{OnboardingQuestAddress: onboardingAddr, QuestID: quest.QuestID, Tasks: tasks}, nil).Maybe()
	resolver := usecase.NewEligibilityResolver(cfg, f.phases, testClock)
	f.uc = usecase.NewSubmitJoinDiscordTask(cfg, f.repo, f.client, resolver, f.oauth, nil)
	return f
}

func discordTask(id int, status models.TaskStatus) models.Task {
	return models.Task{
		TaskID:   id,
		TaskType: models.TaskTypeJoinDiscord,
		Status:   status,
		Metadata: models.TaskMetadata{
			Name:       "Join our Discord",
			Properties: map[string]any{"inviteUrl": "https://discord.gg/aut"},
		},
	}
}

func TestSubmitJoinDiscordTask(t *testing.T) {
	ctx := context.Background()
	started := questStarting(1, testNow.Add(-time.Hour), 5)
	params := usecase.JoinDiscordTaskParams{DaoAddress: daoAddr, QuestID: 1, TaskID: 4}

	applyTo := func(t *testing.T, f *joinDiscordFixture, questID int) {
		t.Helper()
		require.NoError(t, f.phases.SaveAppliedQuest(ctx, accountAddr, &models.AppliedQuest{OnboardingQuestAddress: onboardingAddr, QuestID: questID}))
	}

	t.Run("submits with the discord access token", func(t *testing.T) {
		f := newJoinDiscordFixture(t, started, discordTask(4, models.TaskStatusCreated))
		applyTo(t, f, 1)
		f.oauth.On("Authorize", mock.Anything).Return(&usecase.OAuthToken{AccessToken: "discord-token"}, nil).Once()
		f.client.On("SubmitJoinDiscordTask", mock.Anything, mock.MatchedBy(func(s usecase.JoinDiscordSubmission) bool {
			return s.UserAddress == accountAddr &&
				s.BearerToken == "discord-token" &&
				s.OnboardingPluginAddress == onboardingAddr &&
				s.Task.TaskID == 4
		})).Return(nil).Once()

		target, err := f.uc.Resolve(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "https://discord.gg/aut", target.InviteURL)

		result, err := f.uc.Submit(ctx, target)
		require.NoError(t, err)
		assert.True(t, result.Submitted)
		f.client.AssertExpectations(t)
	})

	t.Run("cancelled authorization returns to idle", func(t *testing.T) {
		f := newJoinDiscordFixture(t, started, discordTask(4, models.TaskStatusCreated))
		applyTo(t, f, 1)
		f.oauth.On("Authorize", mock.Anything).Return(nil, domain.ErrOAuthCancelled).Once()

		target, err := f.uc.Resolve(ctx, params)
		require.NoError(t, err)
		result, err := f.uc.Submit(ctx, target)
		require.NoError(t, err)
		assert.True(t, result.Cancelled)
		assert.False(t, result.Submitted)
		f.client.AssertNotCalled(t, "SubmitJoinDiscordTask", mock.Anything, mock.Anything)
	})

	t.Run("authorization failure", func(t *testing.T) {
		f := newJoinDiscordFixture(t, started, discordTask(4, models.TaskStatusCreated))
		applyTo(t, f, 1)
		f.oauth.On("Authorize", mock.Anything).Return(nil, errors.New("invalid_client")).Once()

		target, err := f.uc.Resolve(ctx, params)
		require.NoError(t, err)
		_, err = f.uc.Submit(ctx, target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_client")
	})

	t.Run("task already submitted", func(t *testing.T) {
		f := newJoinDiscordFixture(t, started, discordTask(4, models.TaskStatusSubmitted))
		applyTo(t, f, 1)

		_, err := f.uc.Resolve(ctx, params)
		require.ErrorIs(t, err, domain.ErrTaskNotSubmittable)
		assert.Contains(t, err.Error(), "Pending")
	})

	t.Run("task of another type", func(t *testing.T) {
		task := discordTask(4, models.TaskStatusCreated)
		task.TaskType = models.TaskTypeQuiz
		f := newJoinDiscordFixture(t, started, task)
		applyTo(t, f, 1)

		_, err := f.uc.Resolve(ctx, params)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("not applied to the quest", func(t *testing.T) {
		f := newJoinDiscordFixture(t, started, discordTask(4, models.TaskStatusCreated))

		_, err := f.uc.Resolve(ctx, params)
		assert.ErrorIs(t, err, domain.ErrTaskNotSubmittable)
	})

	t.Run("quest not started", func(t *testing.T) {
		f := newJoinDiscordFixture(t, questStarting(1, testNow.Add(time.Hour), 5), discordTask(4, models.TaskStatusCreated))
		applyTo(t, f, 1)

		_, err := f.uc.Resolve(ctx, params)
		assert.ErrorIs(t, err, domain.ErrTaskNotSubmittable)
	})
}

func TestListQuestTasks(t *testing.T) {
	ctx := context.Background()
	quest := questStarting(1, testNow.Add(-time.Hour), 5)
	f := newJoinDiscordFixture(t, quest, discordTask(4, models.TaskStatusCreated))
	require.NoError(t, f.phases.SaveAppliedQuest(ctx, accountAddr, &models.AppliedQuest{OnboardingQuestAddress: onboardingAddr, QuestID: 1}))

	resolver := usecase.NewEligibilityResolver(testConfig(), f.phases, testClock)
	uc := usecase.NewListQuestTasks(testConfig(), f.repo, f.client, resolver, nil)

	result, err := uc.Run(ctx, usecase.ListQuestTasksParams{DaoAddress: daoAddr, QuestID: 1})
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)
	assert.True(t, result.CanSubmit)
	assert.True(t, result.Eligibility.HasAppliedForQuest)
}
