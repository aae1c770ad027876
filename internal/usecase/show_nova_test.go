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

func TestShowNova(t *testing.T) {
	ctx := context.Background()

	t.Run("quests carry role names, urls and affordances", func(t *testing.T) {
		future := questStarting(1, testNow.Add(72*time.Hour), 3)
		future.Role = 9
		running := questStarting(2, testNow.Add(-time.Hour), 3)
		nova := testNova(future, running)
		nova.Image = "ipfs://bafy"
		f := newQuestFixture(t, nova)

		result, err := f.show.Run(ctx, usecase.ShowNovaParams{DaoAddress: daoAddr})
		require.NoError(t, err)
		require.Len(t, result.Quests, 2)

		assert.Equal(t, "https://ipfs.test/ipfs/bafy", result.ImageURL)
		assert.True(t, result.Connected)
		assert.False(t, result.IsOwner)

		first := result.Quests[0]
		assert.Equal(t, "N/A", first.RoleName)
		assert.False(t, first.Eligibility.HasQuestStarted)
		// Applying does not wait for the quest to start
		assert.Equal(t, domain.AffordanceApply, first.Affordance.Kind)
		assert.Equal(t, "https://showcase.test/quest?questId=1&onboardingQuestAddress="+onboardingAddr.Hex()+"&daoAddress="+daoAddr.Hex(), first.URL)
		require.NotNil(t, first.EndDate)
		assert.Equal(t, first.Quest.Start().Add(3*24*time.Hour), first.EndDate.Time)
		assert.Equal(t, testNow.Add(144*time.Hour), first.EndDate.Time)

		second := result.Quests[1]
		assert.Equal(t, "Builder", second.RoleName)
		assert.True(t, second.Eligibility.HasQuestStarted)
		assert.Equal(t, domain.AffordanceApply, second.Affordance.Kind)
		assert.Nil(t, result.Tasks)
	})

	t.Run("member phase not started blocks with its tooltip", func(t *testing.T) {
		nova := testNova(questStarting(1, testNow.Add(-time.Hour), 3))
		cfg := testConfig()
		cfg.MemberPhases.PhaseOneStartDate = testNow.Add(time.Hour)

		repo := &MockNovaRepository{}
		repo.On("GetNova", mock.Anything, daoAddr).Return(nova, nil)
		phases := newMemoryPhasesCache()
		resolver := usecase.NewEligibilityResolver(cfg, phases, testClock)
		apply := usecase.NewApplyForQuest(cfg, repo, nil, phases, resolver, nil, nil, discardLogger())
		withdraw := usecase.NewWithdrawFromQuest(cfg, repo, nil, phases, resolver, nil, nil, nil, discardLogger())
		uc := usecase.NewShowNova(cfg, repo, resolver, apply, withdraw, nil)

		result, err := uc.Run(ctx, usecase.ShowNovaParams{DaoAddress: daoAddr})
		require.NoError(t, err)
		require.Len(t, result.Quests, 1)
		aff := result.Quests[0].Affordance
		assert.Equal(t, domain.AffordanceBlocked, aff.Kind)
		assert.True(t, aff.Disabled)
		assert.Equal(t, domain.TooltipPhaseNotStarted, aff.Tooltip)
	})

	t.Run("no account shows every quest evaluated anonymously", func(t *testing.T) {
		nova := testNova(questStarting(1, testNow.Add(-time.Hour), 3))
		cfg := testConfig()
		cfg.Account = [20]byte{}

		repo := &MockNovaRepository{}
		repo.On("GetNova", mock.Anything, daoAddr).Return(nova, nil)
		phases := newMemoryPhasesCache()
		resolver := usecase.NewEligibilityResolver(cfg, phases, testClock)
		apply := usecase.NewApplyForQuest(cfg, repo, nil, phases, resolver, nil, nil, discardLogger())
		withdraw := usecase.NewWithdrawFromQuest(cfg, repo, nil, phases, resolver, nil, nil, nil, discardLogger())
		uc := usecase.NewShowNova(cfg, repo, resolver, apply, withdraw, nil)

		result, err := uc.Run(ctx, usecase.ShowNovaParams{DaoAddress: daoAddr})
		require.NoError(t, err)
		assert.False(t, result.Connected)
		assert.Nil(t, result.Applied)
		assert.Equal(t, domain.AffordanceApply, result.Quests[0].Affordance.Kind)
	})

	t.Run("active only and community tasks", func(t *testing.T) {
		inactive := questStarting(1, testNow.Add(-time.Hour), 3)
		inactive.Active = false
		nova := testNova(inactive, questStarting(2, testNow.Add(-time.Hour), 3))
		f := newQuestFixture(t, nova)
		tasks := []*models.NovaTask{{Name: "Write docs", Role: "Builder"}, nil}
		f.repo.On("ListNovaTasks", mock.Anything, daoAddr).Return(tasks, nil).Once()

		result, err := f.show.Run(ctx, usecase.ShowNovaParams{DaoAddress: daoAddr, ActiveOnly: true, IncludeTasks: true})
		require.NoError(t, err)
		require.Len(t, result.Quests, 1)
		assert.Equal(t, 2, result.Quests[0].Quest.QuestID)
		require.Len(t, result.Tasks, 1)
		assert.Equal(t, "Write docs", result.Tasks[0].Name)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &MockNovaRepository{}
		repo.On("GetNova", mock.Anything, daoAddr).Return(nil, errors.New("offline"))
		cfg := testConfig()
		resolver := usecase.NewEligibilityResolver(cfg, newMemoryPhasesCache(), testClock)
		uc := usecase.NewShowNova(cfg, repo, resolver, nil, nil, nil)

		_, err := uc.Run(ctx, usecase.ShowNovaParams{DaoAddress: daoAddr})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offline")
	})
}

func TestListNovas(t *testing.T) {
	ctx := context.Background()

	mk := func(name string, prestige, market int, quests ...models.Quest) *models.Nova {
		n := testNova(quests...)
		n.Name = name
		n.Properties.Prestige = prestige
		n.Properties.Market = market
		return n
	}

	novas := []*models.Nova{
		mk("beta", 100, 1),
		mk("Alpha", 100, 2, questStarting(1, testNow, 1)),
		mk("gamma", 300, 1),
		mk("delta", 50, 3),
	}

	tests := []struct {
		name   string
		params usecase.ListNovasParams
		want   []string
	}{
		{name: "prestige then name", want: []string{"gamma", "Alpha", "beta", "delta"}},
		{name: "market filter", params: usecase.ListNovasParams{Market: 1}, want: []string{"gamma", "beta"}},
		{name: "search", params: usecase.ListNovasParams{Search: "ALP"}, want: []string{"Alpha"}},
		{name: "no match", params: usecase.ListNovasParams{Archetype: 4}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockNovaRepository{}
			repo.On("ListNovas", mock.Anything).Return(novas, nil)

			result, err := usecase.NewListNovas(repo, nil).Run(ctx, tt.params)
			require.NoError(t, err)

			var names []string
			for _, s := range result.Novas {
				names = append(names, s.Nova.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, len(tt.want), result.Total)
		})
	}

	t.Run("active quest count", func(t *testing.T) {
		repo := &MockNovaRepository{}
		repo.On("ListNovas", mock.Anything).Return(novas, nil)

		result, err := usecase.NewListNovas(repo, nil).Run(ctx, usecase.ListNovasParams{Search: "alpha"})
		require.NoError(t, err)
		require.Len(t, result.Novas, 1)
		assert.Equal(t, 1, result.Novas[0].ActiveQuests)
	})
}
