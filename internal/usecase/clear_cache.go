package usecase

import (
	"context"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
)

// ClearCacheParams contains parameters for clearing caches
type ClearCacheParams struct {
	// AppliedOnly evicts the applied-quest entry and keeps cached responses
	AppliedOnly bool
}

// ClearCacheResult contains the result of clearing caches
type ClearCacheResult struct {
	AppliedEvicted   bool
	ResponsesCleared int
}

// ClearCache evicts the applied-quest entry and cached API responses
type ClearCache struct {
	cfg       *config.RuntimeConfig
	phases    PhasesCache
	responses ResponseCache
}

// NewClearCache creates a new ClearCache use case
func NewClearCache(cfg *config.RuntimeConfig, phases PhasesCache, responses ResponseCache) *ClearCache {
	return &ClearCache{
		cfg:       cfg,
		phases:    phases,
		responses: responses,
	}
}

// Run executes the clear cache use case
func (uc *ClearCache) Run(ctx context.Context, params ClearCacheParams) (*ClearCacheResult, error) {
	result := &ClearCacheResult{}

	if uc.cfg.HasAccount() {
		if err := uc.phases.DeleteAppliedQuest(ctx, uc.cfg.Account); err != nil {
			return nil, fmt.Errorf("failed to evict applied quest: %w", err)
		}
		result.AppliedEvicted = true
	}

	if params.AppliedOnly {
		return result, nil
	}

	n, err := uc.responses.Clear(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear response cache: %w", err)
	}
	result.ResponsesCleared = n

	return result, nil
}
