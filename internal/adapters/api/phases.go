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

// PhasesCacheAdapter keeps the applied quest in the remote cache API
type PhasesCacheAdapter struct {
	client *Client
}

// NewPhasesCacheAdapter creates a new PhasesCacheAdapter
func NewPhasesCacheAdapter(client *Client) *PhasesCacheAdapter {
	return &PhasesCacheAdapter{client: client}
}

type cacheEntry struct {
	CacheKey models.CacheKey `json:"cacheKey"`
	Account  common.Address  `json:"account"`
	models.AppliedQuest
}

func phasesTag(account common.Address) string {
	return "phases:" + account.Hex()
}

func phasesPath() string {
	return fmt.Sprintf("/cache/%s", models.CacheKeyUserPhases)
}

// GetAppliedQuest returns the applied quest of account, or nil when there is none
func (p *PhasesCacheAdapter) GetAppliedQuest(ctx context.Context, account common.Address) (*models.AppliedQuest, error) {
	query := url.Values{"account": []string{account.Hex()}}
	var entry *cacheEntry
	if err := p.client.getCached(ctx, phasesPath(), query, &entry, phasesTag(account)); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if entry == nil || entry.OnboardingQuestAddress == (common.Address{}) {
		return nil, nil
	}
	applied := entry.AppliedQuest
	return &applied, nil
}

// SaveAppliedQuest records entry as the applied quest of account
func (p *PhasesCacheAdapter) SaveAppliedQuest(ctx context.Context, account common.Address, entry *models.AppliedQuest) error {
	if err := p.client.requireAuth(); err != nil {
		return err
	}
	defer p.client.invalidate(ctx, phasesTag(account))

	return p.client.do(ctx, http.MethodPut, phasesPath(), nil, cacheEntry{
		CacheKey:     models.CacheKeyUserPhases,
		Account:      account,
		AppliedQuest: *entry,
	}, nil)
}

// DeleteAppliedQuest removes the applied quest of account. A missing entry is not an error.
func (p *PhasesCacheAdapter) DeleteAppliedQuest(ctx context.Context, account common.Address) error {
	if err := p.client.requireAuth(); err != nil {
		return err
	}
	defer p.client.invalidate(ctx, phasesTag(account))

	query := url.Values{"account": []string{account.Hex()}}
	err := p.client.do(ctx, http.MethodDelete, phasesPath(), query, nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}

var _ usecase.PhasesCache = (*PhasesCacheAdapter)(nil)
