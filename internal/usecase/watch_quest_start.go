package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// WatchTarget identifies the quest to watch
type WatchTarget struct {
	DaoAddress common.Address
	QuestID    int
}

// WatchParams configures a reveal
type WatchParams struct {
	Nova        *models.Nova
	Quest       *models.Quest
	Highlighted bool
}

// Reveal flips HasTimePassed once the quest start time passes.
// The delay is computed once when the reveal starts.
type Reveal struct {
	Nova     *models.Nova
	Quest    *models.Quest
	QuestURL string

	mu            sync.Mutex
	hasTimePassed bool
	done          chan struct{}
	stop          chan struct{}
	cancel        func()
	stopped       bool
}

func newReveal(nova *models.Nova, quest *models.Quest, url string) *Reveal {
	return &Reveal{
		Nova:     nova,
		Quest:    quest,
		QuestURL: url,
		done:     make(chan struct{}),
		stop:     make(chan struct{}),
	}
}

// HasTimePassed reports whether the quest start has been reached
func (r *Reveal) HasTimePassed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasTimePassed
}

// Done is closed when the reveal fires
func (r *Reveal) Done() <-chan struct{} {
	return r.done
}

// Stopped is closed when the reveal is stopped
func (r *Reveal) Stopped() <-chan struct{} {
	return r.stop
}

// Remaining returns the time left until the quest start
func (r *Reveal) Remaining(now time.Time) time.Duration {
	delay, _ := domain.RevealDelay(now, r.Quest.Start())
	return delay
}

// Stop cancels a pending reveal. It is safe to call more than once.
func (r *Reveal) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	close(r.stop)
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Reveal) fire() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasTimePassed || r.stopped {
		return
	}
	r.hasTimePassed = true
	r.cancel = nil
	close(r.done)
}

// WatchQuestStart drives the countdown to a quest start
type WatchQuestStart struct {
	cfg       *config.RuntimeConfig
	repo      NovaRepository
	scheduler Scheduler
	now       Clock
}

// NewWatchQuestStart creates a new WatchQuestStart use case
func NewWatchQuestStart(cfg *config.RuntimeConfig, repo NovaRepository, scheduler Scheduler, now Clock) *WatchQuestStart {
	return &WatchQuestStart{
		cfg:       cfg,
		repo:      repo,
		scheduler: scheduler,
		now:       now,
	}
}

// Load fetches the nova and quest to watch
func (uc *WatchQuestStart) Load(ctx context.Context, target WatchTarget) (*WatchParams, error) {
	nova, quest, err := findNovaQuest(ctx, uc.repo, target.DaoAddress, target.QuestID)
	if err != nil {
		return nil, err
	}
	return &WatchParams{Nova: nova, Quest: quest, Highlighted: true}, nil
}

// Start begins watching. A highlighted quest starting in the future gets exactly
// one scheduled callback; a quest that already started is revealed immediately.
// The reveal is stopped when ctx ends.
func (uc *WatchQuestStart) Start(ctx context.Context, params WatchParams) *Reveal {
	reveal := newReveal(params.Nova, params.Quest, domain.QuestURL(uc.cfg.ShowcaseURL, params.Nova, params.Quest.QuestID))

	if !params.Quest.HasStartDate() {
		return reveal
	}

	delay, passed := domain.RevealDelay(uc.now(), params.Quest.Start())
	if passed {
		reveal.fire()
		return reveal
	}
	if !params.Highlighted {
		return reveal
	}

	cancel := uc.scheduler.AfterFunc(delay, reveal.fire)
	reveal.mu.Lock()
	reveal.cancel = cancel
	reveal.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			reveal.Stop()
		case <-reveal.Done():
		case <-reveal.stop:
		}
	}()

	return reveal
}
